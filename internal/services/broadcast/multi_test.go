package broadcast_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"github.com/KirkDiggler/heroparty/internal/models"
	"github.com/KirkDiggler/heroparty/internal/services/broadcast"
	"github.com/KirkDiggler/heroparty/internal/services/broadcast/mocks"
)

type MultiTestSuite struct {
	suite.Suite
	mockCtrl *gomock.Controller
	first    *mocks.MockNotifier
	second   *mocks.MockNotifier
	ctx      context.Context
}

func (s *MultiTestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.first = mocks.NewMockNotifier(s.mockCtrl)
	s.second = mocks.NewMockNotifier(s.mockCtrl)
	s.ctx = context.Background()
}

func (s *MultiTestSuite) TestPublishReachesEveryNotifier() {
	snapshot := &broadcast.Snapshot{GameID: "ABCDE"}
	boom := errors.New("boom")

	gomock.InOrder(
		s.first.EXPECT().Publish(s.ctx, snapshot).Return(boom),
		s.second.EXPECT().Publish(s.ctx, snapshot).Return(nil),
	)

	err := broadcast.Notifiers{s.first, s.second}.Publish(s.ctx, snapshot)
	s.ErrorIs(err, boom)
}

func (s *MultiTestSuite) TestEmptyNotifiers() {
	s.NoError(broadcast.Notifiers{}.Publish(s.ctx, &broadcast.Snapshot{}))
	s.NoError(broadcast.Announcers(nil).AnnounceResult(s.ctx, &models.GameResult{}))
}

func (s *MultiTestSuite) TestAnnounceReachesEveryAnnouncer() {
	first := mocks.NewMockAnnouncer(s.mockCtrl)
	second := mocks.NewMockAnnouncer(s.mockCtrl)
	result := &models.GameResult{GameID: "ABCDE", WinnerID: "alice"}

	first.EXPECT().AnnounceResult(s.ctx, result).Return(nil)
	second.EXPECT().AnnounceResult(s.ctx, result).Return(nil)

	s.NoError(broadcast.Announcers{first, second}.AnnounceResult(s.ctx, result))
}

func TestMultiSuite(t *testing.T) {
	suite.Run(t, new(MultiTestSuite))
}
