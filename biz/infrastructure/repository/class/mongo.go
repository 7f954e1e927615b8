package class

import (
	"context"
	"errors"
	"time"

	"school-leave/biz/infrastructure/config"
	"school-leave/biz/infrastructure/consts"

	"github.com/zeromicro/go-zero/core/stores/monc"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const prefixClassCacheKey = "cache:class"

type Mapper interface {
	Insert(ctx context.Context, c *Class) error
	FindOne(ctx context.Context, id string) (*Class, error)
	FindOneByTeacher(ctx context.Context, teacherID string) (*Class, error)
	FindAll(ctx context.Context) ([]*Class, error)
	Delete(ctx context.Context, id string) error
	SetTeacher(ctx context.Context, id string, teacherID string) error
	ClearTeacherByTeacher(ctx context.Context, teacherID string) error
	AddStudent(ctx context.Context, id string, studentID string) error
	RemoveStudent(ctx context.Context, id string, studentID string) error
	RemoveAll(ctx context.Context) error
}

type MongoMapper struct {
	conn *monc.Model
}

func NewMongoMapper(config *config.Config) *MongoMapper {
	conn := monc.MustNewModel(config.Mongo.URL, config.Mongo.DB, consts.ClassCollectionName, config.Cache)
	return &MongoMapper{
		conn: conn,
	}
}

func (m *MongoMapper) Insert(ctx context.Context, c *Class) error {
	if c.ID.IsZero() {
		c.ID = primitive.NewObjectID()
	}
	if c.CreateTime.IsZero() {
		c.CreateTime = time.Now()
		c.UpdateTime = c.CreateTime
	}
	if c.Students == nil {
		c.Students = []string{}
	}
	_, err := m.conn.InsertOneNoCache(ctx, c)
	return err
}

func (m *MongoMapper) FindOne(ctx context.Context, id string) (*Class, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, consts.ErrInvalidObjectId
	}
	var c Class
	err = m.conn.FindOneNoCache(ctx, &c, bson.M{
		consts.ID: oid,
	})
	if err != nil {
		return nil, consts.ErrNotFound
	}
	return &c, nil
}

func (m *MongoMapper) FindOneByTeacher(ctx context.Context, teacherID string) (*Class, error) {
	var c Class
	err := m.conn.FindOneNoCache(ctx, &c, bson.M{
		consts.TeacherID: teacherID,
	})
	switch {
	case err == nil:
		return &c, nil
	case errors.Is(err, monc.ErrNotFound):
		return nil, consts.ErrNotFound
	default:
		return nil, err
	}
}

func (m *MongoMapper) FindAll(ctx context.Context) ([]*Class, error) {
	var classes []*Class
	err := m.conn.Find(ctx, &classes, bson.M{}, &options.FindOptions{
		Sort: bson.M{consts.CreateTime: 1},
	})
	if err != nil {
		return nil, err
	}
	return classes, nil
}

func (m *MongoMapper) Delete(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return consts.ErrInvalidObjectId
	}
	n, err := m.conn.DeleteOneNoCache(ctx, bson.M{consts.ID: oid})
	if err != nil {
		return err
	}
	if n == 0 {
		return consts.ErrNotFound
	}
	return nil
}

func (m *MongoMapper) SetTeacher(ctx context.Context, id string, teacherID string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return consts.ErrInvalidObjectId
	}
	update := bson.M{
		"$set": bson.M{
			consts.TeacherID:  teacherID,
			consts.UpdateTime: time.Now(),
		},
	}
	if teacherID == "" {
		update = bson.M{
			"$unset": bson.M{consts.TeacherID: ""},
			"$set":   bson.M{consts.UpdateTime: time.Now()},
		}
	}
	_, err = m.conn.UpdateOneNoCache(ctx, bson.M{consts.ID: oid}, update)
	return err
}

func (m *MongoMapper) ClearTeacherByTeacher(ctx context.Context, teacherID string) error {
	_, err := m.conn.UpdateManyNoCache(ctx, bson.M{consts.TeacherID: teacherID}, bson.M{
		"$unset": bson.M{consts.TeacherID: ""},
		"$set":   bson.M{consts.UpdateTime: time.Now()},
	})
	return err
}

func (m *MongoMapper) AddStudent(ctx context.Context, id string, studentID string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return consts.ErrInvalidObjectId
	}
	_, err = m.conn.UpdateOneNoCache(ctx, bson.M{consts.ID: oid}, bson.M{
		"$addToSet": bson.M{consts.Students: studentID},
		"$set":      bson.M{consts.UpdateTime: time.Now()},
	})
	return err
}

func (m *MongoMapper) RemoveStudent(ctx context.Context, id string, studentID string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return consts.ErrInvalidObjectId
	}
	_, err = m.conn.UpdateOneNoCache(ctx, bson.M{consts.ID: oid}, bson.M{
		"$pull": bson.M{consts.Students: studentID},
		"$set":  bson.M{consts.UpdateTime: time.Now()},
	})
	return err
}

func (m *MongoMapper) RemoveAll(ctx context.Context) error {
	_, err := m.conn.DeleteMany(ctx, bson.M{})
	return err
}
