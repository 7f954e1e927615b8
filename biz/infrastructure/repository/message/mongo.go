package message

import (
	"context"
	"time"

	"school-leave/biz/infrastructure/config"
	"school-leave/biz/infrastructure/consts"

	"github.com/zeromicro/go-zero/core/stores/monc"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const prefixMessageCacheKey = "cache:message"

type Mapper interface {
	Insert(ctx context.Context, msg *Message) error
	FindAll(ctx context.Context) ([]*Message, error)
	FindManyByTeacher(ctx context.Context, teacherID string) ([]*Message, error)
	Delete(ctx context.Context, id string) error
	RemoveAll(ctx context.Context) error
}

type MongoMapper struct {
	conn *monc.Model
}

func NewMongoMapper(config *config.Config) *MongoMapper {
	conn := monc.MustNewModel(config.Mongo.URL, config.Mongo.DB, consts.MessageCollectionName, config.Cache)
	return &MongoMapper{
		conn: conn,
	}
}

func (m *MongoMapper) Insert(ctx context.Context, msg *Message) error {
	if msg.ID.IsZero() {
		msg.ID = primitive.NewObjectID()
	}
	if msg.CreateTime.IsZero() {
		msg.CreateTime = time.Now()
		msg.UpdateTime = msg.CreateTime
	}
	_, err := m.conn.InsertOneNoCache(ctx, msg)
	return err
}

func (m *MongoMapper) FindAll(ctx context.Context) ([]*Message, error) {
	var messages []*Message
	err := m.conn.Find(ctx, &messages, bson.M{}, &options.FindOptions{
		Sort: bson.M{consts.CreateTime: -1},
	})
	if err != nil {
		return nil, err
	}
	return messages, nil
}

func (m *MongoMapper) FindManyByTeacher(ctx context.Context, teacherID string) ([]*Message, error) {
	var messages []*Message
	err := m.conn.Find(ctx, &messages, bson.M{consts.TeacherID: teacherID}, &options.FindOptions{
		Sort: bson.M{consts.CreateTime: -1},
	})
	if err != nil {
		return nil, err
	}
	return messages, nil
}

// Delete 删除通知，id不存在时视为已删除
func (m *MongoMapper) Delete(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return consts.ErrInvalidObjectId
	}
	_, err = m.conn.DeleteOneNoCache(ctx, bson.M{consts.ID: oid})
	return err
}

func (m *MongoMapper) RemoveAll(ctx context.Context) error {
	_, err := m.conn.DeleteMany(ctx, bson.M{})
	return err
}
