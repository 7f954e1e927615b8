package user

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

const prefixUserCacheKey = "cache:user"

type Mapper interface {
	Insert(ctx context.Context, u *User) error
	FindOne(ctx context.Context, id string) (*User, error)
	FindOneByEmail(ctx context.Context, email string) (*User, error)
	FindManyByRole(ctx context.Context, role string) ([]*User, error)
	Delete(ctx context.Context, id string) error
	SetAssignedClass(ctx context.Context, id string, classID string) error
	ClearAssignedClassByClass(ctx context.Context, classID string) error
	RemoveAll(ctx context.Context) error
}

type MongoMapper struct {
	conn *monc.Model
}

func NewMongoMapper(config *config.Config) *MongoMapper {
	conn := monc.MustNewModel(config.Mongo.URL, config.Mongo.DB, consts.UserCollectionName, config.Cache)
	return &MongoMapper{
		conn: conn,
	}
}

func (m *MongoMapper) Insert(ctx context.Context, u *User) error {
	if u.ID.IsZero() {
		u.ID = primitive.NewObjectID()
	}
	if u.CreateTime.IsZero() {
		u.CreateTime = time.Now()
		u.UpdateTime = u.CreateTime
	}
	_, err := m.conn.InsertOneNoCache(ctx, u)
	return err
}

func (m *MongoMapper) FindOne(ctx context.Context, id string) (*User, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, consts.ErrInvalidObjectId
	}
	var u User
	err = m.conn.FindOneNoCache(ctx, &u, bson.M{
		consts.ID: oid,
	})
	if err != nil {
		return nil, consts.ErrNotFound
	}
	return &u, nil
}

func (m *MongoMapper) FindOneByEmail(ctx context.Context, email string) (*User, error) {
	var u User
	err := m.conn.FindOneNoCache(ctx, &u, bson.M{
		consts.Email: email,
	})
	switch {
	case err == nil:
		return &u, nil
	case errors.Is(err, monc.ErrNotFound):
		return nil, consts.ErrNotFound
	default:
		return nil, err
	}
}

func (m *MongoMapper) FindManyByRole(ctx context.Context, role string) ([]*User, error) {
	var users []*User
	err := m.conn.Find(ctx, &users, bson.M{consts.Role: role}, &options.FindOptions{
		Sort: bson.M{consts.CreateTime: 1},
	})
	if err != nil {
		return nil, err
	}
	return users, nil
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

func (m *MongoMapper) SetAssignedClass(ctx context.Context, id string, classID string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return consts.ErrInvalidObjectId
	}
	update := bson.M{
		"$set": bson.M{
			consts.AssignedClassID: classID,
			consts.UpdateTime:      time.Now(),
		},
	}
	if classID == "" {
		update = bson.M{
			"$unset": bson.M{consts.AssignedClassID: ""},
			"$set":   bson.M{consts.UpdateTime: time.Now()},
		}
	}
	_, err = m.conn.UpdateOneNoCache(ctx, bson.M{consts.ID: oid}, update)
	return err
}

func (m *MongoMapper) ClearAssignedClassByClass(ctx context.Context, classID string) error {
	_, err := m.conn.UpdateManyNoCache(ctx, bson.M{consts.AssignedClassID: classID}, bson.M{
		"$unset": bson.M{consts.AssignedClassID: ""},
		"$set":   bson.M{consts.UpdateTime: time.Now()},
	})
	return err
}

func (m *MongoMapper) RemoveAll(ctx context.Context) error {
	_, err := m.conn.DeleteMany(ctx, bson.M{})
	return err
}
