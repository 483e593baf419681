package session

import (
	"context"
	"testing"

	"github.com/KirkDiggler/roomsplit/internal/models"
	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/suite"
)

type RedisRepositoryTestSuite struct {
	suite.Suite
	mr     *miniredis.Miniredis
	client *redis.Client
	repo   Repository
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
}

func (s *RedisRepositoryTestSuite) TearDownTest() {
	s.client.Close()
	s.mr.Close()
}

func TestRedisRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(RedisRepositoryTestSuite))
}

func (s *RedisRepositoryTestSuite) TestSaveAndGetRoomInfo() {
	roomInfo := &models.RoomInfo{
		HotelName: "Grand Hotel",
		Dates:     "June 1-3",
		Beds:      "2 Queens",
		RoomType:  "Suite",
	}

	err := s.repo.SaveRoomInfo(context.Background(), &SaveRoomInfoInput{
		ChannelID: "test-channel-id",
		RoomInfo:  roomInfo,
	})
	s.Require().NoError(err)

	retrieved, err := s.repo.GetRoomInfo(context.Background(), &GetRoomInfoInput{
		ChannelID: "test-channel-id",
	})
	s.Require().NoError(err)
	s.Require().NotNil(retrieved)

	s.Equal("Grand Hotel", retrieved.HotelName)
	s.Equal("June 1-3", retrieved.Dates)
	s.Equal("2 Queens", retrieved.Beds)
	s.Equal("Suite", retrieved.RoomType)
}

func (s *RedisRepositoryTestSuite) TestGetRoomInfoNotSet() {
	_, err := s.repo.GetRoomInfo(context.Background(), &GetRoomInfoInput{
		ChannelID: "empty-channel-id",
	})
	s.Require().Error(err)
	s.Equal(ErrNotFound, err)
}

func (s *RedisRepositoryTestSuite) TestSaveRoomInfoOverwrites() {
	err := s.repo.SaveRoomInfo(context.Background(), &SaveRoomInfoInput{
		ChannelID: "test-channel-id",
		RoomInfo: &models.RoomInfo{
			HotelName: "Old Hotel",
			Dates:     "May 1-2",
			Beds:      "1 King",
			RoomType:  "Standard",
		},
	})
	s.Require().NoError(err)

	err = s.repo.SaveRoomInfo(context.Background(), &SaveRoomInfoInput{
		ChannelID: "test-channel-id",
		RoomInfo: &models.RoomInfo{
			HotelName: "New Hotel",
			Dates:     "June 1-3",
			Beds:      "2 Queens",
			RoomType:  "Suite",
		},
	})
	s.Require().NoError(err)

	retrieved, err := s.repo.GetRoomInfo(context.Background(), &GetRoomInfoInput{
		ChannelID: "test-channel-id",
	})
	s.Require().NoError(err)
	s.Equal("New Hotel", retrieved.HotelName)
}

func (s *RedisRepositoryTestSuite) TestSaveAndGetRoster() {
	err := s.repo.SaveRoster(context.Background(), &SaveRosterInput{
		ChannelID: "test-channel-id",
		Names:     []string{"Alice", "Bob", "Bob"},
	})
	s.Require().NoError(err)

	names, err := s.repo.GetRoster(context.Background(), &GetRosterInput{
		ChannelID: "test-channel-id",
	})
	s.Require().NoError(err)

	// Order and duplicates are preserved
	s.Equal([]string{"Alice", "Bob", "Bob"}, names)
}

func (s *RedisRepositoryTestSuite) TestGetRosterNotSet() {
	_, err := s.repo.GetRoster(context.Background(), &GetRosterInput{
		ChannelID: "empty-channel-id",
	})
	s.Require().Error(err)
	s.Equal(ErrNotFound, err)
}

func (s *RedisRepositoryTestSuite) TestSaveRosterEmpty() {
	err := s.repo.SaveRoster(context.Background(), &SaveRosterInput{
		ChannelID: "test-channel-id",
		Names:     []string{},
	})
	s.Require().Error(err)
}

func (s *RedisRepositoryTestSuite) TestCurrencyDefaultsToDollar() {
	symbol, err := s.repo.GetCurrency(context.Background(), &GetCurrencyInput{
		ChannelID: "test-channel-id",
	})
	s.Require().NoError(err)
	s.Equal("$", symbol)
}

func (s *RedisRepositoryTestSuite) TestSetAndGetCurrency() {
	err := s.repo.SetCurrency(context.Background(), &SetCurrencyInput{
		ChannelID: "test-channel-id",
		Symbol:    "€",
	})
	s.Require().NoError(err)

	symbol, err := s.repo.GetCurrency(context.Background(), &GetCurrencyInput{
		ChannelID: "test-channel-id",
	})
	s.Require().NoError(err)
	s.Equal("€", symbol)

	// Other channels keep the default
	symbol, err = s.repo.GetCurrency(context.Background(), &GetCurrencyInput{
		ChannelID: "other-channel-id",
	})
	s.Require().NoError(err)
	s.Equal("$", symbol)
}

func (s *RedisRepositoryTestSuite) TestDialogueLifecycle() {
	// Defaults to none
	state, err := s.repo.GetActiveDialogue(context.Background(), &GetActiveDialogueInput{
		ChannelID: "test-channel-id",
	})
	s.Require().NoError(err)
	s.Equal(models.DialogueStateNone, state)

	// Set to awaiting room info
	err = s.repo.SetActiveDialogue(context.Background(), &SetActiveDialogueInput{
		ChannelID: "test-channel-id",
		State:     models.DialogueStateAwaitingRoomInfo,
	})
	s.Require().NoError(err)

	state, err = s.repo.GetActiveDialogue(context.Background(), &GetActiveDialogueInput{
		ChannelID: "test-channel-id",
	})
	s.Require().NoError(err)
	s.Equal(models.DialogueStateAwaitingRoomInfo, state)

	// A second dialogue entry supersedes the first
	err = s.repo.SetActiveDialogue(context.Background(), &SetActiveDialogueInput{
		ChannelID: "test-channel-id",
		State:     models.DialogueStateAwaitingRoommates,
	})
	s.Require().NoError(err)

	state, err = s.repo.GetActiveDialogue(context.Background(), &GetActiveDialogueInput{
		ChannelID: "test-channel-id",
	})
	s.Require().NoError(err)
	s.Equal(models.DialogueStateAwaitingRoommates, state)

	// Clear resets to none
	err = s.repo.ClearActiveDialogue(context.Background(), &ClearActiveDialogueInput{
		ChannelID: "test-channel-id",
	})
	s.Require().NoError(err)

	state, err = s.repo.GetActiveDialogue(context.Background(), &GetActiveDialogueInput{
		ChannelID: "test-channel-id",
	})
	s.Require().NoError(err)
	s.Equal(models.DialogueStateNone, state)
}

func (s *RedisRepositoryTestSuite) TestLastSplitMessage() {
	_, err := s.repo.GetLastSplitMessage(context.Background(), &GetLastSplitMessageInput{
		ChannelID: "test-channel-id",
	})
	s.Require().Error(err)
	s.Equal(ErrNotFound, err)

	err = s.repo.SetLastSplitMessage(context.Background(), &SetLastSplitMessageInput{
		ChannelID: "test-channel-id",
		MessageID: "test-message-id",
	})
	s.Require().NoError(err)

	messageID, err := s.repo.GetLastSplitMessage(context.Background(), &GetLastSplitMessageInput{
		ChannelID: "test-channel-id",
	})
	s.Require().NoError(err)
	s.Equal("test-message-id", messageID)
}
