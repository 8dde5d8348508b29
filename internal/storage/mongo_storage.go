package storage

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/depu2006/CareerGenomeai/internal/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
	"go.mongodb.org/mongo-driver/x/mongo/driver/topology"
	"go.uber.org/zap"
)

type MongoStore struct {
	client *mongo.Client
	db     *mongo.Database
	log    *zap.Logger
}

// OpenMongo connects and verifies the server within a short selection timeout.
// Callers fall back to SQLite when it fails.
func OpenMongo(ctx context.Context, uri, dbName string, log *zap.Logger) (*MongoStore, error) {
	if uri == "" {
		return nil, errors.New("storage: MONGO_URI is empty")
	}
	opts := options.Client().ApplyURI(uri).SetServerSelectionTimeout(2 * time.Second)
	client, err := mongo.Connect(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("storage: connect mongo: %w", err)
	}

	pingCtx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()
	if err := client.Ping(pingCtx, readpref.Primary()); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, fmt.Errorf("storage: ping mongo: %w", err)
	}

	s := &MongoStore{client: client, db: client.Database(dbName), log: log}

	// 이메일 유니크 인덱스
	_, err = s.db.Collection(CollUsers).Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "email", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	if err != nil {
		log.Warn("failed to ensure users.email index", zap.Error(err))
	}
	log.Info("mongo document store ready", zap.String("db", dbName))
	return s, nil
}

func (s *MongoStore) Ping(ctx context.Context) error {
	return s.client.Ping(ctx, readpref.Primary())
}

func (s *MongoStore) Close(ctx context.Context) error {
	return s.client.Disconnect(ctx)
}

type userDoc struct {
	ID          primitive.ObjectID `bson:"_id,omitempty"`
	models.User `bson:",inline"`
}

func (d userDoc) toModel() *models.User {
	u := d.User
	u.ID = d.ID.Hex()
	if u.Profile == nil {
		u.Profile = map[string]any{}
	}
	return &u
}

func (s *MongoStore) CreateUser(ctx context.Context, user *models.User) error {
	if user.Profile == nil {
		user.Profile = map[string]any{}
	}
	res, err := s.db.Collection(CollUsers).InsertOne(ctx, userDoc{User: *user})
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return ErrEmailExists
		}
		if mongoUnavailable(err) {
			return fmt.Errorf("storage: insert user: %w: %w", ErrUnavailable, err)
		}
		return fmt.Errorf("storage: insert user: %w", err)
	}
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		user.ID = oid.Hex()
	}
	return nil
}

func (s *MongoStore) findUser(ctx context.Context, filter bson.M) (*models.User, error) {
	var d userDoc
	if err := s.db.Collection(CollUsers).FindOne(ctx, filter).Decode(&d); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		if mongoUnavailable(err) {
			return nil, fmt.Errorf("storage: load user: %w: %w", ErrUnavailable, err)
		}
		return nil, err
	}
	return d.toModel(), nil
}

// 네트워크 오류, 타임아웃, 서버 선택 실패, 연결 해제 후 호출
func mongoUnavailable(err error) bool {
	if mongo.IsNetworkError(err) || mongo.IsTimeout(err) || errors.Is(err, mongo.ErrClientDisconnected) {
		return true
	}
	var selErr topology.ServerSelectionError
	return errors.As(err, &selErr)
}

func (s *MongoStore) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	return s.findUser(ctx, bson.M{"email": email})
}

func (s *MongoStore) GetUserByID(ctx context.Context, id string) (*models.User, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, ErrNotFound
	}
	return s.findUser(ctx, bson.M{"_id": oid})
}

func (s *MongoStore) UpdateProfile(ctx context.Context, id string, profile map[string]any) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return ErrNotFound
	}
	if profile == nil {
		profile = map[string]any{}
	}
	res, err := s.db.Collection(CollUsers).UpdateOne(ctx, bson.M{"_id": oid}, bson.M{"$set": bson.M{"profile": profile}})
	if err != nil {
		return fmt.Errorf("storage: update profile: %w", err)
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *MongoStore) CountRoleQuestions(ctx context.Context, role string) (int64, error) {
	return s.db.Collection(CollRoleQuestions).CountDocuments(ctx, bson.M{"role": role})
}

func (s *MongoStore) RoleQuestionExists(ctx context.Context, role, question string) (bool, error) {
	n, err := s.db.Collection(CollRoleQuestions).CountDocuments(ctx,
		bson.M{"role": role, "question": question}, options.Count().SetLimit(1))
	return n > 0, err
}

func (s *MongoStore) InsertRoleQuestion(ctx context.Context, q models.RoleQuestion) error {
	_, err := s.db.Collection(CollRoleQuestions).InsertOne(ctx, q)
	return err
}

func (s *MongoStore) SampleRoleQuestions(ctx context.Context, role string, exclude []string, n int) ([]models.RoleQuestion, error) {
	if exclude == nil {
		exclude = []string{}
	}
	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: bson.M{"role": role, "question": bson.M{"$nin": exclude}}}},
		{{Key: "$sample", Value: bson.M{"size": n}}},
	}
	cur, err := s.db.Collection(CollRoleQuestions).Aggregate(ctx, pipeline)
	if err != nil {
		return nil, fmt.Errorf("storage: sample role questions: %w", err)
	}
	defer cur.Close(ctx)

	var out []models.RoleQuestion
	if err := cur.All(ctx, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (s *MongoStore) CountSmartQuestions(ctx context.Context, role, difficulty string) (int64, error) {
	return s.db.Collection(CollSmartQuestions).CountDocuments(ctx, bson.M{"role": role, "difficulty": difficulty})
}

func (s *MongoStore) UpsertSmartQuestion(ctx context.Context, q models.SmartQuestion) (bool, error) {
	res, err := s.db.Collection(CollSmartQuestions).UpdateOne(ctx,
		bson.M{"question": q.Question},
		bson.M{"$set": q},
		options.Update().SetUpsert(true))
	if err != nil {
		return false, fmt.Errorf("storage: upsert smart question: %w", err)
	}
	return res.UpsertedID != nil, nil
}

func (s *MongoStore) SampleSmartQuestion(ctx context.Context, role, difficulty string) (*models.SmartQuestion, error) {
	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: bson.M{"role": role, "difficulty": difficulty}}},
		{{Key: "$sample", Value: bson.M{"size": 1}}},
	}
	cur, err := s.db.Collection(CollSmartQuestions).Aggregate(ctx, pipeline)
	if err != nil {
		return nil, fmt.Errorf("storage: sample smart question: %w", err)
	}
	defer cur.Close(ctx)

	var out []models.SmartQuestion
	if err := cur.All(ctx, &out); err != nil {
		return nil, err
	}
	if len(out) == 0 {
		return nil, ErrNotFound
	}
	return &out[0], nil
}

func (s *MongoStore) UpsertSkillGap(ctx context.Context, rec models.SkillGapRecord) error {
	_, err := s.db.Collection(CollSkillGaps).UpdateOne(ctx,
		bson.M{"email": rec.Email, "role": rec.Role},
		bson.M{"$set": bson.M{"result": rec.Result, "updated_at": rec.UpdatedAt}},
		options.Update().SetUpsert(true))
	if err != nil {
		return fmt.Errorf("storage: upsert skill gap: %w", err)
	}
	return nil
}

func (s *MongoStore) LatestSkillGap(ctx context.Context, email string) (*models.SkillGapRecord, error) {
	var rec models.SkillGapRecord
	opts := options.FindOne().SetSort(bson.D{{Key: "updated_at", Value: -1}})
	if err := s.db.Collection(CollSkillGaps).FindOne(ctx, bson.M{"email": email}, opts).Decode(&rec); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &rec, nil
}

func (s *MongoStore) DeleteSkillGaps(ctx context.Context, email string) (int64, error) {
	res, err := s.db.Collection(CollSkillGaps).DeleteMany(ctx, bson.M{"email": email})
	if err != nil {
		return 0, fmt.Errorf("storage: delete skill gaps: %w", err)
	}
	return res.DeletedCount, nil
}

func (s *MongoStore) InsertInterview(ctx context.Context, rec models.InterviewRecord) error {
	_, err := s.db.Collection(CollInterviews).InsertOne(ctx, rec)
	return err
}

func (s *MongoStore) InsertDocument(ctx context.Context, collection string, doc any) error {
	if _, err := s.db.Collection(collection).InsertOne(ctx, doc); err != nil {
		return fmt.Errorf("storage: insert into %s: %w", collection, err)
	}
	return nil
}

func (s *MongoStore) ListCollections(ctx context.Context) ([]string, error) {
	return s.db.ListCollectionNames(ctx, bson.D{})
}

func (s *MongoStore) LatestDocuments(ctx context.Context, collection string, limit int) ([]map[string]any, error) {
	opts := options.Find().SetSort(bson.D{{Key: "date", Value: -1}}).SetLimit(int64(limit))
	cur, err := s.db.Collection(collection).Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("storage: latest documents: %w", err)
	}
	defer cur.Close(ctx)

	var raw []bson.M
	if err := cur.All(ctx, &raw); err != nil {
		return nil, err
	}
	docs := make([]map[string]any, 0, len(raw))
	for _, d := range raw {
		doc := make(map[string]any, len(d))
		for k, v := range d {
			switch val := v.(type) {
			case primitive.ObjectID:
				doc[k] = val.Hex()
			case primitive.DateTime:
				doc[k] = stringifyTime(val.Time())
			default:
				doc[k] = stringifyTime(v)
			}
		}
		delete(doc, "password")
		docs = append(docs, doc)
	}
	return docs, nil
}
