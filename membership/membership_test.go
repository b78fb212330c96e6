package membership

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fiveNodes() *Configuration {
	return New(
		Member{ID: "e", Address: "localhost:5005"},
		Member{ID: "a", Address: "localhost:5001"},
		Member{ID: "c", Address: "localhost:5003"},
		Member{ID: "b", Address: "localhost:5002"},
		Member{ID: "d", Address: "localhost:5004"},
	)
}

func TestQuorum(t *testing.T) {
	assert.Equal(t, 1, New(Member{ID: "a", Address: "x"}).Quorum())
	assert.Equal(t, 2, New(Member{ID: "a"}, Member{ID: "b"}).Quorum())
	assert.Equal(t, 3, fiveNodes().Quorum())

	six, err := fiveNodes().Apply(Change{Op: AddNode, NodeID: "f", Address: "localhost:5006"})
	require.NoError(t, err)
	assert.Equal(t, 4, six.Quorum())
}

func TestVotersAreSorted(t *testing.T) {
	assert.Equal(t, []string{"a", "b", "c", "d", "e"}, fiveNodes().Voters())
}

func TestApplyDoesNotMutateReceiver(t *testing.T) {
	config := fiveNodes()

	next, err := config.Apply(Change{Op: RemoveNode, NodeID: "c"})

	require.NoError(t, err)
	assert.True(t, config.Contains("c"))
	assert.False(t, next.Contains("c"))
	assert.Equal(t, 4, next.Size())
}

func TestApplyRejectsInvalidChanges(t *testing.T) {
	config := fiveNodes()

	_, err := config.Apply(Change{Op: AddNode, NodeID: "a", Address: "localhost:6000"})
	assert.ErrorIs(t, err, ErrAlreadyMember)

	_, err = config.Apply(Change{Op: RemoveNode, NodeID: "z"})
	assert.ErrorIs(t, err, ErrNotMember)

	_, err = config.Apply(Change{Op: AddNode, NodeID: "f"})
	assert.ErrorIs(t, err, ErrInvalidChange)

	_, err = New(Member{ID: "a", Address: "x"}).Apply(Change{Op: RemoveNode, NodeID: "a"})
	assert.ErrorIs(t, err, ErrInvalidChange)
}

func TestChangeTravelsAsAny(t *testing.T) {
	change := Change{Op: AddNode, NodeID: "f", Address: "localhost:5006"}

	command, err := change.ToAny()
	require.NoError(t, err)
	decoded, err := ChangeFromAny(command)

	require.NoError(t, err)
	assert.Equal(t, change, decoded)
}

func TestChangeFromAnyRejectsNil(t *testing.T) {
	_, err := ChangeFromAny(nil)
	assert.ErrorIs(t, err, ErrInvalidChange)
}
