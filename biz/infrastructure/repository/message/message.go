package message

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Message 早退放行通知，创建后不可修改
type Message struct {
	ID         primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	TeacherID  string             `bson:"teacher_id" json:"teacherId"`
	StudentID  string             `bson:"student_id" json:"studentId"`
	ClassID    string             `bson:"class_id" json:"classId"`
	Date       string             `bson:"date" json:"date"`
	Time       string             `bson:"time" json:"time"`
	Reason     string             `bson:"reason" json:"reason"`
	CreateTime time.Time          `bson:"create_time" json:"createTime"`
	UpdateTime time.Time          `bson:"update_time" json:"updateTime"`
}
