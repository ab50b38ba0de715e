package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"marketplace/config"
	"marketplace/internal/domain/repository"
	"marketplace/internal/domain/service"
	mockRepo "marketplace/internal/mocks/repository"
	mockSvc "marketplace/internal/mocks/service"

	"github.com/stretchr/testify/mock"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestConfig(maxBatchSize int) *config.Config {
	return &config.Config{
		Marketplace: &config.MarketplaceConfig{
			MaxBatchSize: maxBatchSize,
		},
	}
}

// repoMocks bundles the repository mocks handed out by a transaction-bound factory.
type repoMocks struct {
	txManager      *mockRepo.MockTransactionManager
	factory        *mockRepo.MockRepositoryFactory
	userRepo       *mockRepo.MockUserRepository
	nftRepo        *mockRepo.MockNFTRepository
	collectionRepo *mockRepo.MockCollectionRepository
	publisher      *mockSvc.MockEventPublisher
}

func newRepoMocks(t *testing.T) repoMocks {
	m := repoMocks{
		txManager:      mockRepo.NewMockTransactionManager(t),
		factory:        mockRepo.NewMockRepositoryFactory(t),
		userRepo:       mockRepo.NewMockUserRepository(t),
		nftRepo:        mockRepo.NewMockNFTRepository(t),
		collectionRepo: mockRepo.NewMockCollectionRepository(t),
		publisher:      mockSvc.NewMockEventPublisher(t),
	}

	m.factory.EXPECT().UserRepo().Return(m.userRepo).Maybe()
	m.factory.EXPECT().NFTRepo().Return(m.nftRepo).Maybe()
	m.factory.EXPECT().CollectionRepo().Return(m.collectionRepo).Maybe()

	return m
}

// expectTransaction makes the transaction manager run the unit of work against the mocked factory.
func (m repoMocks) expectTransaction() {
	m.txManager.EXPECT().
		Execute(mock.Anything, mock.Anything).
		RunAndReturn(func(_ context.Context, fn func(repository.RepositoryFactory) error) error {
			return fn(m.factory)
		})
}

// expectEvent expects exactly one published event of the given type.
func (m repoMocks) expectEvent(eventType service.EventType) {
	m.publisher.EXPECT().
		PublishMarketplaceEvent(mock.Anything, mock.MatchedBy(func(event *service.MarketplaceEvent) bool {
			return event.Type == eventType && event.EventID != ""
		})).
		Return(nil).
		Once()
}
