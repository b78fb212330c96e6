package kv_store

import (
	"context"
	"testing"
	"time"

	"github.com/r-moraru/cluster-consensus/proto/entries"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"google.golang.org/protobuf/types/known/anypb"
)

type KvStoreTestSuite struct {
	suite.Suite

	store *KvStore
}

func (s *KvStoreTestSuite) SetupTest() {
	s.store = New()
}

func (s *KvStoreTestSuite) entry(index uint64, clientID string, serializationID uint64, command *anypb.Any) *entries.LogEntry {
	return &entries.LogEntry{
		Index:           index,
		Term:            1,
		Type:            entries.EntryType_NORMAL,
		ClientID:        clientID,
		SerializationID: serializationID,
		Command:         command,
	}
}

func (s *KvStoreTestSuite) TestWriteThenGet() {
	t := s.T()
	command, err := WriteCommand("x", "1")
	require.NoError(t, err)

	require.NoError(t, s.store.Apply(s.entry(1, "client", 1, command)))

	value, found := s.store.Get("x")
	assert.True(t, found)
	assert.Equal(t, "1", value)
	assert.Equal(t, uint64(1), s.store.GetLastApplied())
}

func (s *KvStoreTestSuite) TestNoOpOnlyAdvancesLastApplied() {
	t := s.T()

	require.NoError(t, s.store.Apply(&entries.LogEntry{Index: 1, Term: 2, Type: entries.EntryType_NO_OP}))

	assert.Equal(t, uint64(1), s.store.GetLastApplied())
	_, found := s.store.Get("x")
	assert.False(t, found)
}

func (s *KvStoreTestSuite) TestRejectsOutOfOrderIndex() {
	t := s.T()
	command, _ := WriteCommand("x", "1")

	err := s.store.Apply(s.entry(2, "client", 1, command))

	assert.ErrorIs(t, err, ErrInvalidIndex)
	assert.Equal(t, uint64(0), s.store.GetLastApplied())
}

func (s *KvStoreTestSuite) TestReplayedIndexIsIgnored() {
	t := s.T()
	first, _ := WriteCommand("x", "1")
	second, _ := WriteCommand("x", "2")
	require.NoError(t, s.store.Apply(s.entry(1, "client", 1, first)))

	require.NoError(t, s.store.Apply(s.entry(1, "client", 1, second)))

	value, _ := s.store.Get("x")
	assert.Equal(t, "1", value)
}

func (s *KvStoreTestSuite) TestDuplicateSerializationIDExecutesOnce() {
	t := s.T()
	write, _ := WriteCommand("x", "1")
	del, _ := DeleteCommand("x")
	require.NoError(t, s.store.Apply(s.entry(1, "client", 1, write)))
	require.NoError(t, s.store.Apply(s.entry(2, "other", 1, del)))
	require.NoError(t, s.store.Apply(s.entry(3, "client", 1, write)))

	_, found := s.store.Get("x")
	assert.False(t, found)
	assert.Equal(t, uint64(3), s.store.GetLastApplied())
}

func (s *KvStoreTestSuite) TestMalformedCommandIsRecordedNotFatal() {
	t := s.T()

	require.NoError(t, s.store.Apply(s.entry(1, "client", 7, nil)))

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	result := <-s.store.WaitForResult(ctx, "client", 7)
	assert.ErrorIs(t, result.Error, ErrBadRequest)
	assert.Equal(t, uint64(1), s.store.GetLastApplied())
}

func (s *KvStoreTestSuite) TestWaitForResultBlocksUntilApplied() {
	t := s.T()
	command, _ := WriteCommand("x", "1")
	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()

	resChan := s.store.WaitForResult(ctx, "client", 1)
	select {
	case <-resChan:
		t.Fatal("result delivered before the command was applied")
	case <-time.After(20 * time.Millisecond):
	}

	require.NoError(t, s.store.Apply(s.entry(1, "client", 1, command)))

	result := <-resChan
	require.NoError(t, result.Error)
	success, _, _, err := DecodeResult(result.Result)
	require.NoError(t, err)
	assert.True(t, success)
}

func (s *KvStoreTestSuite) TestWaitForResultHonoursContext() {
	t := s.T()
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()

	result := <-s.store.WaitForResult(ctx, "client", 1)

	assert.ErrorIs(t, result.Error, context.DeadlineExceeded)
}

func (s *KvStoreTestSuite) TestDeleteReportsWhetherKeyExisted() {
	t := s.T()
	write, _ := WriteCommand("x", "1")
	del, _ := DeleteCommand("x")
	require.NoError(t, s.store.Apply(s.entry(1, "client", 1, write)))
	require.NoError(t, s.store.Apply(s.entry(2, "client", 2, del)))
	require.NoError(t, s.store.Apply(s.entry(3, "client", 3, del)))

	ctx := context.Background()
	first := <-s.store.WaitForResult(ctx, "client", 2)
	second := <-s.store.WaitForResult(ctx, "client", 3)
	_, found, _, _ := DecodeResult(first.Result)
	assert.True(t, found)
	_, found, _, _ = DecodeResult(second.Result)
	assert.False(t, found)
}

func TestEncodeRejectsEmptyKey(t *testing.T) {
	_, err := WriteCommand("", "1")
	assert.ErrorIs(t, err, ErrBadRequest)
}

func TestKvStoreTestSuite(t *testing.T) {
	suite.Run(t, new(KvStoreTestSuite))
}
