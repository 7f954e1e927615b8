package student

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

const prefixStudentCacheKey = "cache:student"

type Mapper interface {
	Insert(ctx context.Context, s *Student) error
	FindOne(ctx context.Context, id string) (*Student, error)
	FindAll(ctx context.Context) ([]*Student, error)
	FindManyByClass(ctx context.Context, classID string) ([]*Student, error)
	Delete(ctx context.Context, id string) error
	SetClass(ctx context.Context, id string, classID string) error
	ClearClassByClass(ctx context.Context, classID string) error
	RemoveAll(ctx context.Context) error
}

type MongoMapper struct {
	conn *monc.Model
}

func NewMongoMapper(config *config.Config) *MongoMapper {
	conn := monc.MustNewModel(config.Mongo.URL, config.Mongo.DB, consts.StudentCollectionName, config.Cache)
	return &MongoMapper{
		conn: conn,
	}
}

func (m *MongoMapper) Insert(ctx context.Context, s *Student) error {
	if s.ID.IsZero() {
		s.ID = primitive.NewObjectID()
	}
	if s.CreateTime.IsZero() {
		s.CreateTime = time.Now()
		s.UpdateTime = s.CreateTime
	}
	_, err := m.conn.InsertOneNoCache(ctx, s)
	return err
}

func (m *MongoMapper) FindOne(ctx context.Context, id string) (*Student, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, consts.ErrInvalidObjectId
	}
	var s Student
	err = m.conn.FindOneNoCache(ctx, &s, bson.M{
		consts.ID: oid,
	})
	if err != nil {
		return nil, consts.ErrNotFound
	}
	return &s, nil
}

func (m *MongoMapper) FindAll(ctx context.Context) ([]*Student, error) {
	var students []*Student
	err := m.conn.Find(ctx, &students, bson.M{}, &options.FindOptions{
		Sort: bson.M{consts.CreateTime: 1},
	})
	if err != nil {
		return nil, err
	}
	return students, nil
}

func (m *MongoMapper) FindManyByClass(ctx context.Context, classID string) ([]*Student, error) {
	var students []*Student
	err := m.conn.Find(ctx, &students, bson.M{consts.ClassID: classID}, &options.FindOptions{
		Sort: bson.M{consts.CreateTime: 1},
	})
	if err != nil {
		return nil, err
	}
	return students, nil
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

func (m *MongoMapper) SetClass(ctx context.Context, id string, classID string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return consts.ErrInvalidObjectId
	}
	update := bson.M{
		"$set": bson.M{
			consts.ClassID:    classID,
			consts.UpdateTime: time.Now(),
		},
	}
	if classID == "" {
		update = bson.M{
			"$unset": bson.M{consts.ClassID: ""},
			"$set":   bson.M{consts.UpdateTime: time.Now()},
		}
	}
	_, err = m.conn.UpdateOneNoCache(ctx, bson.M{consts.ID: oid}, update)
	return err
}

func (m *MongoMapper) ClearClassByClass(ctx context.Context, classID string) error {
	_, err := m.conn.UpdateManyNoCache(ctx, bson.M{consts.ClassID: classID}, bson.M{
		"$unset": bson.M{consts.ClassID: ""},
		"$set":   bson.M{consts.UpdateTime: time.Now()},
	})
	return err
}

func (m *MongoMapper) RemoveAll(ctx context.Context) error {
	_, err := m.conn.DeleteMany(ctx, bson.M{})
	return err
}
