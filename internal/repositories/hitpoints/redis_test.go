package hitpoints

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/go-redis/redismock/v9"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/suite"

	hpdomain "github.com/Cameron637/ddb-backend-developer-challenge/internal/domain/hitpoints"
	dnderr "github.com/Cameron637/ddb-backend-developer-challenge/internal/errors"
)

type RedisRepoTestSuite struct {
	suite.Suite
	mockClient *redis.Client
	mock       redismock.ClientMock
	repo       Repository
	ctx        context.Context
	briv       *hpdomain.Record
}

func (s *RedisRepoTestSuite) SetupTest() {
	s.mockClient, s.mock = redismock.NewClientMock()
	s.repo = NewRedis(s.mockClient)
	s.ctx = context.Background()
	s.briv = &hpdomain.Record{
		ID:        "briv",
		Total:     25,
		Current:   25,
		Temporary: 0,
		Defenses: hpdomain.Defenses{
			hpdomain.DamageTypeFire:     hpdomain.DefenseImmunity,
			hpdomain.DamageTypeSlashing: hpdomain.DefenseResistance,
		},
	}
}

func (s *RedisRepoTestSuite) TearDownTest() {
	s.NoError(s.mock.ExpectationsWereMet())
}

func TestRedisRepoTestSuite(t *testing.T) {
	suite.Run(t, new(RedisRepoTestSuite))
}

func (s *RedisRepoTestSuite) payload(record *hpdomain.Record) string {
	data, err := json.Marshal(Data{
		ID:        record.ID,
		Total:     record.Total,
		Current:   record.Current,
		Temporary: record.Temporary,
		Defenses: map[string]string{
			"fire":     "immunity",
			"slashing": "resistance",
		},
	})
	s.Require().NoError(err)
	return string(data)
}

func (s *RedisRepoTestSuite) TestPut() {
	s.mock.ExpectSet("hp:briv", s.payload(s.briv), 0).SetVal("OK")

	s.NoError(s.repo.Put(s.ctx, s.briv))
}

func (s *RedisRepoTestSuite) TestPut_Error() {
	s.mock.ExpectSet("hp:briv", s.payload(s.briv), 0).SetErr(errors.New("connection refused"))

	err := s.repo.Put(s.ctx, s.briv)
	s.Error(err)
	s.Contains(err.Error(), "connection refused")
}

func (s *RedisRepoTestSuite) TestPut_NilRecord() {
	err := s.repo.Put(s.ctx, nil)
	s.True(dnderr.IsInvalidArgument(err))
}

func (s *RedisRepoTestSuite) TestGet() {
	s.mock.ExpectGet("hp:briv").SetVal(s.payload(s.briv))

	got, err := s.repo.Get(s.ctx, "briv")
	s.Require().NoError(err)
	s.Equal(s.briv, got)
}

func (s *RedisRepoTestSuite) TestGet_NotFound() {
	s.mock.ExpectGet("hp:ghost").RedisNil()

	_, err := s.repo.Get(s.ctx, "ghost")
	s.True(dnderr.IsNotFound(err))
}

func (s *RedisRepoTestSuite) TestGet_CorruptPayload() {
	s.mock.ExpectGet("hp:briv").SetVal("{not json")

	_, err := s.repo.Get(s.ctx, "briv")
	s.Error(err)
	s.False(dnderr.IsNotFound(err))
}

func (s *RedisRepoTestSuite) TestGet_InvalidStoredRecord() {
	s.mock.ExpectGet("hp:briv").SetVal(`{"id":"briv","total":25,"current":30,"temporary":0,"defenses":{}}`)

	_, err := s.repo.Get(s.ctx, "briv")
	s.Equal(dnderr.CodeInternal, dnderr.GetCode(err))
}

func (s *RedisRepoTestSuite) TestGet_EmptyID() {
	_, err := s.repo.Get(s.ctx, "")
	s.True(dnderr.IsInvalidArgument(err))
}

func (s *RedisRepoTestSuite) TestDelete() {
	s.mock.ExpectDel("hp:briv").SetVal(1)

	s.NoError(s.repo.Delete(s.ctx, "briv"))
}

func (s *RedisRepoTestSuite) TestDelete_NotFound() {
	s.mock.ExpectDel("hp:ghost").SetVal(0)

	err := s.repo.Delete(s.ctx, "ghost")
	s.True(dnderr.IsNotFound(err))
}

func (s *RedisRepoTestSuite) TestPing() {
	s.mock.ExpectPing().SetVal("PONG")

	s.NoError(s.repo.Ping(s.ctx))
}

func TestRedisRepositoryConstructorSuite(t *testing.T) {
	suite.Run(t, new(constructorSuite))
}

type constructorSuite struct {
	suite.Suite
}

func (s *constructorSuite) TestNilConfig() {
	s.Panics(func() { NewRedisRepository(nil) })
}

func (s *constructorSuite) TestNilClient() {
	s.Panics(func() { NewRedisRepository(&RedisRepoConfig{}) })
}

func (s *constructorSuite) TestDefaultRetries() {
	client, _ := redismock.NewClientMock()
	repo := NewRedisRepository(&RedisRepoConfig{Client: client}).(*redisRepo)
	s.Equal(defaultMaxRetries, repo.maxRetries)
}
