package hitpoints_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	domain "github.com/Cameron637/ddb-backend-developer-challenge/internal/domain/hitpoints"
	dnderr "github.com/Cameron637/ddb-backend-developer-challenge/internal/errors"
	hitpointsRepo "github.com/Cameron637/ddb-backend-developer-challenge/internal/repositories/hitpoints"
	mockhitpoints "github.com/Cameron637/ddb-backend-developer-challenge/internal/repositories/hitpoints/mock"
	"github.com/Cameron637/ddb-backend-developer-challenge/internal/services/hitpoints"
	"github.com/Cameron637/ddb-backend-developer-challenge/internal/testutils"
)

type ServiceTestSuite struct {
	suite.Suite
	ctrl     *gomock.Controller
	mockRepo *mockhitpoints.MockRepository
	logs     *observer.ObservedLogs
	service  hitpoints.Service
	ctx      context.Context
}

func (s *ServiceTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.mockRepo = mockhitpoints.NewMockRepository(s.ctrl)

	core, logs := observer.New(zap.DebugLevel)
	s.logs = logs
	s.service = hitpoints.NewService(&hitpoints.ServiceConfig{
		Repository: s.mockRepo,
		Logger:     zap.New(core),
	})
	s.ctx = context.Background()
}

func (s *ServiceTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func TestServiceSuite(t *testing.T) {
	suite.Run(t, new(ServiceTestSuite))
}

// runMutation makes the mocked Update behave like a real store holding record.
func (s *ServiceTestSuite) runMutation(record *domain.Record) func(context.Context, string, hitpointsRepo.MutateFunc) (*domain.Record, error) {
	return func(_ context.Context, _ string, mutate hitpointsRepo.MutateFunc) (*domain.Record, error) {
		return mutate(record.Clone())
	}
}

func (s *ServiceTestSuite) TestCreateOrUpdate_FoldsDefensesAndStores() {
	input := &hitpoints.CreateOrUpdateInput{
		ID:        "briv",
		HitPoints: 25,
		Defenses: []hitpoints.DefenseInput{
			{Type: "fire", Defense: "immunity"},
			{Type: "slashing", Defense: "resistance"},
			{Type: "fire", Defense: "resistance"},
		},
	}

	s.mockRepo.EXPECT().
		Put(s.ctx, testutils.CreateBriv()).
		Return(nil)

	record, err := s.service.CreateOrUpdate(s.ctx, input)
	s.Require().NoError(err)
	s.Equal(25, record.Current)
	s.Equal(0, record.Temporary)
	s.Equal(domain.DefenseImmunity, record.Defenses[domain.DamageTypeFire])
	s.Equal(1, s.logs.FilterMessage("hit point record created").Len())
}

func (s *ServiceTestSuite) TestCreateOrUpdate_InvalidInputNeverWrites() {
	// no repository expectations: any call fails the test
	_, err := s.service.CreateOrUpdate(s.ctx, &hitpoints.CreateOrUpdateInput{
		ID:        "",
		HitPoints: 0,
		Defenses: []hitpoints.DefenseInput{
			{Type: "psionic", Defense: "immunity"},
			{Type: "fire", Defense: "vulnerability"},
		},
	})
	s.Require().Error(err)
	s.True(dnderr.IsInvalidArgument(err))

	fields, ok := dnderr.GetMeta(err)[dnderr.MetaFields].([]string)
	s.Require().True(ok)
	s.Len(fields, 4)
}

func (s *ServiceTestSuite) TestCreateOrUpdate_NilDefenses() {
	_, err := s.service.CreateOrUpdate(s.ctx, &hitpoints.CreateOrUpdateInput{ID: "briv", HitPoints: 25})
	s.True(dnderr.IsInvalidArgument(err))
}

func (s *ServiceTestSuite) TestCreateOrUpdate_EmptyDefenses() {
	s.mockRepo.EXPECT().Put(s.ctx, gomock.Any()).Return(nil)

	record, err := s.service.CreateOrUpdate(s.ctx, &hitpoints.CreateOrUpdateInput{
		ID:        "briv",
		HitPoints: 25,
		Defenses:  []hitpoints.DefenseInput{},
	})
	s.Require().NoError(err)
	s.Empty(record.Defenses)
}

func (s *ServiceTestSuite) TestCreateOrUpdate_StoreFailure() {
	s.mockRepo.EXPECT().Put(s.ctx, gomock.Any()).Return(errors.New("connection reset"))

	_, err := s.service.CreateOrUpdate(s.ctx, &hitpoints.CreateOrUpdateInput{
		ID:        "briv",
		HitPoints: 25,
		Defenses:  []hitpoints.DefenseInput{},
	})
	s.Require().Error(err)
	s.Equal(dnderr.CodeUnknown, dnderr.GetCode(err))
	s.Contains(err.Error(), "connection reset")
}

func (s *ServiceTestSuite) TestGet_NotFound() {
	s.mockRepo.EXPECT().
		Get(s.ctx, "ghost").
		Return(nil, dnderr.NotFound("missing"))

	_, err := s.service.Get(s.ctx, "ghost")
	s.True(dnderr.IsNotFound(err))
	s.Equal("ghost", dnderr.GetMeta(err)["record_id"])
}

func (s *ServiceTestSuite) TestDealDamage() {
	s.mockRepo.EXPECT().
		Update(s.ctx, "briv", gomock.Any()).
		DoAndReturn(s.runMutation(testutils.CreateBriv()))

	record, err := s.service.DealDamage(s.ctx, &hitpoints.DealDamageInput{
		ID: "briv",
		Damage: []hitpoints.DamageInput{
			{Type: "piercing", Amount: 14},
		},
	})
	s.Require().NoError(err)
	s.Equal(11, record.Current)
	s.Equal(1, s.logs.FilterMessage("damage dealt").Len())
}

func (s *ServiceTestSuite) TestDealDamage_ReducedToZeroLogsDown() {
	s.mockRepo.EXPECT().
		Update(s.ctx, "briv", gomock.Any()).
		DoAndReturn(s.runMutation(testutils.CreateBriv()))

	record, err := s.service.DealDamage(s.ctx, &hitpoints.DealDamageInput{
		ID:     "briv",
		Damage: []hitpoints.DamageInput{{Type: "cold", Amount: 100}},
	})
	s.Require().NoError(err)
	s.Equal(0, record.Current)
	s.Equal(1, s.logs.FilterMessage("record reduced to zero hit points").Len())
}

func (s *ServiceTestSuite) TestDealDamage_NotFoundPropagates() {
	s.mockRepo.EXPECT().
		Update(s.ctx, "ghost", gomock.Any()).
		Return(nil, dnderr.NotFound("missing"))

	_, err := s.service.DealDamage(s.ctx, &hitpoints.DealDamageInput{
		ID:     "ghost",
		Damage: []hitpoints.DamageInput{{Type: "fire", Amount: 1}},
	})
	s.True(dnderr.IsNotFound(err))
}

func (s *ServiceTestSuite) TestDealDamage_InvalidInputNeverLoads() {
	tests := []struct {
		name  string
		input *hitpoints.DealDamageInput
	}{
		{name: "nil input", input: nil},
		{name: "missing damage list", input: &hitpoints.DealDamageInput{ID: "briv"}},
		{name: "zero amount", input: &hitpoints.DealDamageInput{ID: "briv", Damage: []hitpoints.DamageInput{{Type: "fire", Amount: 0}}}},
		{name: "negative amount", input: &hitpoints.DealDamageInput{ID: "briv", Damage: []hitpoints.DamageInput{{Type: "fire", Amount: -3}}}},
		{name: "unknown type", input: &hitpoints.DealDamageInput{ID: "briv", Damage: []hitpoints.DamageInput{{Type: "sonic", Amount: 3}}}},
	}

	for _, tt := range tests {
		s.Run(tt.name, func() {
			_, err := s.service.DealDamage(s.ctx, tt.input)
			s.True(dnderr.IsInvalidArgument(err))
		})
	}
}

func (s *ServiceTestSuite) TestDealDamage_EmptyListIsNoOp() {
	s.mockRepo.EXPECT().
		Update(s.ctx, "briv", gomock.Any()).
		DoAndReturn(s.runMutation(testutils.CreateBriv()))

	record, err := s.service.DealDamage(s.ctx, &hitpoints.DealDamageInput{
		ID:     "briv",
		Damage: []hitpoints.DamageInput{},
	})
	s.Require().NoError(err)
	s.Equal(25, record.Current)
}

func (s *ServiceTestSuite) TestHeal() {
	hurt := testutils.CreateBriv()
	hurt.Current = 11

	s.mockRepo.EXPECT().
		Update(s.ctx, "briv", gomock.Any()).
		DoAndReturn(s.runMutation(hurt))

	record, err := s.service.Heal(s.ctx, &hitpoints.AmountInput{ID: "briv", Amount: 10})
	s.Require().NoError(err)
	s.Equal(21, record.Current)
}

func (s *ServiceTestSuite) TestHeal_InvalidAmount() {
	_, err := s.service.Heal(s.ctx, &hitpoints.AmountInput{ID: "briv", Amount: 0})
	s.True(dnderr.IsInvalidArgument(err))
}

func (s *ServiceTestSuite) TestHeal_NotFoundPropagates() {
	s.mockRepo.EXPECT().
		Update(s.ctx, "ghost", gomock.Any()).
		Return(nil, dnderr.NotFound("missing"))

	_, err := s.service.Heal(s.ctx, &hitpoints.AmountInput{ID: "ghost", Amount: 5})
	s.True(dnderr.IsNotFound(err))
}

func (s *ServiceTestSuite) TestAddTemporaryHitPoints() {
	buffed := testutils.CreateBriv()
	buffed.Temporary = 8

	s.mockRepo.EXPECT().
		Update(s.ctx, "briv", gomock.Any()).
		DoAndReturn(s.runMutation(buffed))

	record, err := s.service.AddTemporaryHitPoints(s.ctx, &hitpoints.AmountInput{ID: "briv", Amount: 5})
	s.Require().NoError(err)
	s.Equal(8, record.Temporary)
}

func (s *ServiceTestSuite) TestAddTemporaryHitPoints_NotFoundPropagates() {
	s.mockRepo.EXPECT().
		Update(s.ctx, "ghost", gomock.Any()).
		Return(nil, dnderr.NotFound("missing"))

	_, err := s.service.AddTemporaryHitPoints(s.ctx, &hitpoints.AmountInput{ID: "ghost", Amount: 5})
	s.True(dnderr.IsNotFound(err))
}

func (s *ServiceTestSuite) TestDelete() {
	s.mockRepo.EXPECT().Delete(s.ctx, "briv").Return(nil)

	s.NoError(s.service.Delete(s.ctx, "briv"))
}

func (s *ServiceTestSuite) TestDelete_EmptyID() {
	err := s.service.Delete(s.ctx, "")
	s.True(dnderr.IsInvalidArgument(err))
}

func (s *ServiceTestSuite) TestPing_Unavailable() {
	s.mockRepo.EXPECT().Ping(s.ctx).Return(errors.New("dial tcp: refused"))

	err := s.service.Ping(s.ctx)
	s.True(dnderr.IsUnavailable(err))
}

func TestNewService_RequiresRepository(t *testing.T) {
	assert.Panics(t, func() { hitpoints.NewService(&hitpoints.ServiceConfig{}) })
	assert.Panics(t, func() { hitpoints.NewService(nil) })
}
