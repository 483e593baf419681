package ack

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/suite"
)

type RedisRepositoryTestSuite struct {
	suite.Suite
	mr      *miniredis.Miniredis
	client  *redis.Client
	repo    Repository
	testNow time.Time
}

func (s *RedisRepositoryTestSuite) SetupTest() {
	// Create a new miniredis server for each test
	mr, err := miniredis.Run()
	s.Require().NoError(err)
	s.mr = mr

	// Create a Redis client connected to the miniredis server
	s.client = redis.NewClient(&redis.Options{
		Addr: s.mr.Addr(),
	})

	// Create the repository
	repo, err := NewRedis(&Config{
		RedisClient: s.client,
	})
	s.Require().NoError(err)
	s.repo = repo

	// Set up test time
	s.testNow = time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)
}

func (s *RedisRepositoryTestSuite) TearDownTest() {
	s.client.Close()
	s.mr.Close()
}

func TestRedisRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(RedisRepositoryTestSuite))
}

func (s *RedisRepositoryTestSuite) registerTestMessage() {
	err := s.repo.RegisterMessage(context.Background(), &RegisterMessageInput{
		ChannelID: "test-channel-id",
		MessageID: "test-message-id",
		SplitID:   "test-split-id",
		BaseText:  "**Room Cost Split (Equal Share):**\nTotal Cost: $300.00",
		CreatedAt: s.testNow,
	})
	s.Require().NoError(err)
}

func (s *RedisRepositoryTestSuite) TestRegisterAndGetMessage() {
	s.registerTestMessage()

	message, err := s.repo.GetMessage(context.Background(), &GetMessageInput{
		MessageID: "test-message-id",
	})
	s.Require().NoError(err)
	s.Require().NotNil(message)

	s.Equal("test-channel-id", message.ChannelID)
	s.Equal("test-message-id", message.MessageID)
	s.Equal("test-split-id", message.SplitID)
	s.Equal("**Room Cost Split (Equal Share):**\nTotal Cost: $300.00", message.BaseText)
	s.Empty(message.Acknowledgers)
	s.Equal(s.testNow.Unix(), message.CreatedAt.Unix())
}

func (s *RedisRepositoryTestSuite) TestGetMessageNotRegistered() {
	_, err := s.repo.GetMessage(context.Background(), &GetMessageInput{
		MessageID: "unknown-message-id",
	})
	s.Require().Error(err)
	s.Equal(ErrMessageNotFound, err)
}

func (s *RedisRepositoryTestSuite) TestAddAcknowledgerNotRegistered() {
	_, err := s.repo.AddAcknowledger(context.Background(), &AddAcknowledgerInput{
		MessageID:   "unknown-message-id",
		UserID:      "user-1",
		DisplayName: "Alice",
	})
	s.Require().Error(err)
	s.Equal(ErrMessageNotFound, err)
}

func (s *RedisRepositoryTestSuite) TestAddAcknowledgerIsIdempotent() {
	s.registerTestMessage()

	first, err := s.repo.AddAcknowledger(context.Background(), &AddAcknowledgerInput{
		MessageID:   "test-message-id",
		UserID:      "user-1",
		DisplayName: "Alice",
	})
	s.Require().NoError(err)
	s.True(first.Added)
	s.Len(first.Acknowledgers, 1)

	// Acknowledging twice leaves the set unchanged
	second, err := s.repo.AddAcknowledger(context.Background(), &AddAcknowledgerInput{
		MessageID:   "test-message-id",
		UserID:      "user-1",
		DisplayName: "Alice",
	})
	s.Require().NoError(err)
	s.False(second.Added)
	s.Len(second.Acknowledgers, 1)
}

func (s *RedisRepositoryTestSuite) TestAcknowledgersKeepInsertionOrder() {
	s.registerTestMessage()

	for _, user := range []struct{ id, name string }{
		{"user-3", "Carol"},
		{"user-1", "Alice"},
		{"user-2", "Bob"},
	} {
		output, err := s.repo.AddAcknowledger(context.Background(), &AddAcknowledgerInput{
			MessageID:   "test-message-id",
			UserID:      user.id,
			DisplayName: user.name,
		})
		s.Require().NoError(err)
		s.True(output.Added)
	}

	message, err := s.repo.GetMessage(context.Background(), &GetMessageInput{
		MessageID: "test-message-id",
	})
	s.Require().NoError(err)
	s.Require().Len(message.Acknowledgers, 3)

	s.Equal("user-3", message.Acknowledgers[0].UserID)
	s.Equal("Carol", message.Acknowledgers[0].DisplayName)
	s.Equal("user-1", message.Acknowledgers[1].UserID)
	s.Equal("Alice", message.Acknowledgers[1].DisplayName)
	s.Equal("user-2", message.Acknowledgers[2].UserID)
	s.Equal("Bob", message.Acknowledgers[2].DisplayName)
}

func (s *RedisRepositoryTestSuite) TestTwoDistinctAcknowledgers() {
	s.registerTestMessage()

	// Regardless of call order, both end up in the set
	var wg sync.WaitGroup
	for _, user := range []struct{ id, name string }{
		{"user-1", "Alice"},
		{"user-2", "Bob"},
	} {
		wg.Add(1)
		go func(id, name string) {
			defer wg.Done()
			_, err := s.repo.AddAcknowledger(context.Background(), &AddAcknowledgerInput{
				MessageID:   "test-message-id",
				UserID:      id,
				DisplayName: name,
			})
			s.NoError(err)
		}(user.id, user.name)
	}
	wg.Wait()

	message, err := s.repo.GetMessage(context.Background(), &GetMessageInput{
		MessageID: "test-message-id",
	})
	s.Require().NoError(err)
	s.Len(message.Acknowledgers, 2)
}

func (s *RedisRepositoryTestSuite) TestConcurrentSameUserSingleAdd() {
	s.registerTestMessage()

	// Many concurrent taps by the same user produce exactly one entry
	// and exactly one Added=true
	const taps = 16
	addedCount := 0
	var mu sync.Mutex
	var wg sync.WaitGroup

	for i := 0; i < taps; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			output, err := s.repo.AddAcknowledger(context.Background(), &AddAcknowledgerInput{
				MessageID:   "test-message-id",
				UserID:      "user-1",
				DisplayName: "Alice",
			})
			s.NoError(err)
			if output != nil && output.Added {
				mu.Lock()
				addedCount++
				mu.Unlock()
			}
		}()
	}
	wg.Wait()

	s.Equal(1, addedCount)

	message, err := s.repo.GetMessage(context.Background(), &GetMessageInput{
		MessageID: "test-message-id",
	})
	s.Require().NoError(err)
	s.Len(message.Acknowledgers, 1)
}

func (s *RedisRepositoryTestSuite) TestReRegisterResetsSet() {
	s.registerTestMessage()

	_, err := s.repo.AddAcknowledger(context.Background(), &AddAcknowledgerInput{
		MessageID:   "test-message-id",
		UserID:      "user-1",
		DisplayName: "Alice",
	})
	s.Require().NoError(err)

	// Registering the same message ID again resets the set
	s.registerTestMessage()

	message, err := s.repo.GetMessage(context.Background(), &GetMessageInput{
		MessageID: "test-message-id",
	})
	s.Require().NoError(err)
	s.Empty(message.Acknowledgers)
}
