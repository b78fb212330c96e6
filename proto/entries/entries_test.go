package entries

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/reflect/protoreflect"
	"google.golang.org/protobuf/types/known/anypb"
	"google.golang.org/protobuf/types/known/timestamppb"
	"google.golang.org/protobuf/types/known/wrapperspb"
)

func TestLogEntryDescriptor(t *testing.T) {
	md := (&LogEntry{}).ProtoReflect().Descriptor()
	assert.Equal(t, protoreflect.FullName("entries.LogEntry"), md.FullName())

	fields := map[protoreflect.FieldNumber]protoreflect.Name{
		1: "index",
		2: "term",
		3: "type",
		4: "clientID",
		5: "serializationID",
		6: "command",
		7: "timestamp",
	}
	require.Equal(t, len(fields), md.Fields().Len())
	for number, name := range fields {
		fd := md.Fields().ByNumber(number)
		require.NotNil(t, fd, "field %d", number)
		assert.Equal(t, name, fd.Name())
	}
	assert.Equal(t, protoreflect.FullName("entries.EntryType"), md.Fields().ByName("type").Enum().FullName())
	assert.Equal(t, protoreflect.FullName("google.protobuf.Any"), md.Fields().ByName("command").Message().FullName())
}

func TestEntryTypeNames(t *testing.T) {
	assert.Equal(t, "NORMAL", EntryType_NORMAL.String())
	assert.Equal(t, "CONFIG_CHANGE", EntryType_CONFIG_CHANGE.String())
	assert.Equal(t, "NO_OP", EntryType_NO_OP.String())
	assert.Equal(t, EntryType_NORMAL, (*LogEntry)(nil).GetType())
}

func TestLogEntrySurvivesMarshal(t *testing.T) {
	command, err := anypb.New(wrapperspb.String("x=1"))
	require.NoError(t, err)
	entry := &LogEntry{
		Index:           4,
		Term:            2,
		Type:            EntryType_CONFIG_CHANGE,
		ClientID:        "client",
		SerializationID: 11,
		Command:         command,
		Timestamp:       timestamppb.Now(),
	}

	b, err := proto.Marshal(entry)
	require.NoError(t, err)
	decoded := new(LogEntry)
	require.NoError(t, proto.Unmarshal(b, decoded))

	assert.True(t, proto.Equal(entry, decoded))
	assert.Equal(t, "client", decoded.GetClientID())
	assert.Equal(t, uint64(11), decoded.GetSerializationID())
}
