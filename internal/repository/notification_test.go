//go:build integration
// +build integration

package repository

import (
	"sync"
	"testing"
	"time"

	"nexodus-admin-backend/internal/database/models"
	"nexodus-admin-backend/internal/testutils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
)

// NotificationRepositoryTestSuite tests the NotificationRepository
type NotificationRepositoryTestSuite struct {
	suite.Suite
	baseTestSuite *testutils.BaseTestSuite
	repo          *NotificationRepository
	factories     *testutils.FactorySet
}

// SetupSuite runs before all tests in the suite
func (suite *NotificationRepositoryTestSuite) SetupSuite() {
	suite.baseTestSuite = testutils.SetupTestSuite(suite.T())

	suite.repo = NewNotificationRepository(suite.baseTestSuite.DB)
	suite.factories = testutils.NewFactorySet()
}

// TearDownSuite runs after all tests in the suite
func (suite *NotificationRepositoryTestSuite) TearDownSuite() {
	suite.baseTestSuite.TeardownTestSuite()
}

// SetupTest runs before each test
func (suite *NotificationRepositoryTestSuite) SetupTest() {
	suite.baseTestSuite.SetupTest()
}

// TearDownTest runs after each test
func (suite *NotificationRepositoryTestSuite) TearDownTest() {
	suite.baseTestSuite.TearDownTest()
}

func (suite *NotificationRepositoryTestSuite) TestCreate() {
	n := suite.factories.Notification.Create(uuid.New())

	err := suite.repo.Create(n)

	suite.NoError(err)
	suite.NotEqual(uuid.Nil, n.ID)
	suite.NotZero(n.CreatedAt)
	suite.Nil(n.DeliveredAt)
}

func (suite *NotificationRepositoryTestSuite) TestClaimPendingOrderedAndScoped() {
	userID := uuid.New()
	other := uuid.New()

	first := suite.factories.Notification.Warning(userID, "No record selected for accepting the invitation")
	suite.Require().NoError(suite.repo.Create(first))
	time.Sleep(5 * time.Millisecond)
	second := suite.factories.Notification.Create(userID)
	suite.Require().NoError(suite.repo.Create(second))
	suite.Require().NoError(suite.repo.Create(suite.factories.Notification.Create(other)))

	at := time.Now().UTC().Truncate(time.Millisecond)
	claimed, err := suite.repo.ClaimPending(userID, at)

	suite.NoError(err)
	suite.Require().Len(claimed, 2)
	suite.Equal(first.ID, claimed[0].ID)
	suite.Equal(models.NotificationWarning, claimed[0].Type)
	suite.Equal(second.ID, claimed[1].ID)
	suite.Require().NotNil(claimed[0].DeliveredAt)
	suite.WithinDuration(at, *claimed[0].DeliveredAt, time.Millisecond)

	var untouched models.Notification
	suite.Require().NoError(suite.baseTestSuite.DB.Where("user_id = ?", other).First(&untouched).Error)
	suite.Nil(untouched.DeliveredAt)
}

func (suite *NotificationRepositoryTestSuite) TestClaimPendingEmpty() {
	claimed, err := suite.repo.ClaimPending(uuid.New(), time.Now())

	suite.NoError(err)
	suite.Empty(claimed)
}

func (suite *NotificationRepositoryTestSuite) TestClaimPendingOnce() {
	userID := uuid.New()
	suite.Require().NoError(suite.repo.Create(suite.factories.Notification.Create(userID)))

	claimed, err := suite.repo.ClaimPending(userID, time.Now())
	suite.NoError(err)
	suite.Len(claimed, 1)

	again, err := suite.repo.ClaimPending(userID, time.Now())
	suite.NoError(err)
	suite.Empty(again)
}

func (suite *NotificationRepositoryTestSuite) TestClaimPendingConcurrent() {
	const rows = 20
	const workers = 4

	userID := uuid.New()
	for i := 0; i < rows; i++ {
		suite.Require().NoError(suite.repo.Create(suite.factories.Notification.Create(userID)))
	}

	var (
		wg   sync.WaitGroup
		mu   sync.Mutex
		seen = make(map[uuid.UUID]int)
		errs []error
	)
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			claimed, err := suite.repo.ClaimPending(userID, time.Now())
			mu.Lock()
			defer mu.Unlock()
			if err != nil {
				errs = append(errs, err)
				return
			}
			for _, n := range claimed {
				seen[n.ID]++
			}
		}()
	}
	wg.Wait()

	suite.Empty(errs)
	suite.Len(seen, rows)
	for id, count := range seen {
		suite.Equal(1, count, "notification %s claimed more than once", id)
	}
}

func (suite *NotificationRepositoryTestSuite) TestDeleteDeliveredBefore() {
	userID := uuid.New()
	old := suite.factories.Notification.Create(userID)
	recent := suite.factories.Notification.Create(userID)
	suite.Require().NoError(suite.repo.Create(old))
	suite.Require().NoError(suite.repo.Create(recent))

	now := time.Now()
	_, err := suite.repo.ClaimPending(userID, now)
	suite.Require().NoError(err)
	suite.Require().NoError(suite.baseTestSuite.DB.Model(&models.Notification{}).
		Where("id = ?", old.ID).Update("delivered_at", now.Add(-48*time.Hour)).Error)
	suite.Require().NoError(suite.repo.Create(suite.factories.Notification.Create(userID)))

	removed, err := suite.repo.DeleteDeliveredBefore(now.Add(-24 * time.Hour))

	suite.NoError(err)
	suite.Equal(int64(1), removed)

	var remaining int64
	suite.baseTestSuite.DB.Model(&models.Notification{}).Where("user_id = ?", userID).Count(&remaining)
	suite.Equal(int64(2), remaining)
}

// TestNotificationRepositoryTestSuite runs the test suite
func TestNotificationRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(NotificationRepositoryTestSuite))
}
