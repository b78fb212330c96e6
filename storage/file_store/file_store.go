package file_store

import (
	"errors"
	"fmt"
	"hash/crc32"
	"os"
	"path/filepath"
	"sync"

	"github.com/r-moraru/cluster-consensus/storage"
	"google.golang.org/protobuf/encoding/protowire"
)

const stateFilename = "raft_state"

const (
	termField     protowire.Number = 1
	votedForField protowire.Number = 2
	checksumField protowire.Number = 15
)

// FileStore keeps the hard state in a single file replaced atomically on
// every save.
type FileStore struct {
	mu       sync.Mutex
	dir      string
	filename string
}

func New(dataDir string) (*FileStore, error) {
	if err := os.MkdirAll(dataDir, 0o755); err != nil {
		return nil, fmt.Errorf("mkdir data dir: %w", err)
	}
	return &FileStore{
		dir:      dataDir,
		filename: filepath.Join(dataDir, stateFilename),
	}, nil
}

func (s *FileStore) Load() (storage.HardState, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	b, err := os.ReadFile(s.filename)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return storage.HardState{}, nil
		}
		return storage.HardState{}, fmt.Errorf("read hard state: %w", err)
	}
	return decode(b)
}

func (s *FileStore) Save(state storage.HardState) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return storage.WriteFileAtomic(s.dir, s.filename, encode(state), "hard state")
}

func encode(state storage.HardState) []byte {
	var b []byte
	b = protowire.AppendTag(b, termField, protowire.VarintType)
	b = protowire.AppendVarint(b, state.CurrentTerm)
	b = protowire.AppendTag(b, votedForField, protowire.BytesType)
	b = protowire.AppendString(b, state.VotedFor)
	sum := crc32.ChecksumIEEE(b)
	b = protowire.AppendTag(b, checksumField, protowire.Fixed32Type)
	return protowire.AppendFixed32(b, sum)
}

func decode(b []byte) (storage.HardState, error) {
	var state storage.HardState
	var sum uint32
	var haveSum bool
	payloadLen := 0

	rest := b
	for len(rest) > 0 {
		num, typ, n := protowire.ConsumeTag(rest)
		if n < 0 {
			return state, fmt.Errorf("%w: hard state tag: %v", storage.ErrCorrupted, protowire.ParseError(n))
		}
		if num == checksumField {
			payloadLen = len(b) - len(rest)
		}
		rest = rest[n:]

		switch {
		case num == termField && typ == protowire.VarintType:
			state.CurrentTerm, n = protowire.ConsumeVarint(rest)
		case num == votedForField && typ == protowire.BytesType:
			state.VotedFor, n = protowire.ConsumeString(rest)
		case num == checksumField && typ == protowire.Fixed32Type:
			sum, n = protowire.ConsumeFixed32(rest)
			haveSum = true
		default:
			n = protowire.ConsumeFieldValue(num, typ, rest)
		}
		if n < 0 {
			return state, fmt.Errorf("%w: hard state field %d: %v", storage.ErrCorrupted, num, protowire.ParseError(n))
		}
		rest = rest[n:]
	}

	if !haveSum {
		return state, fmt.Errorf("%w: hard state checksum missing", storage.ErrCorrupted)
	}
	if crc32.ChecksumIEEE(b[:payloadLen]) != sum {
		return state, fmt.Errorf("%w: hard state checksum mismatch", storage.ErrCorrupted)
	}
	return state, nil
}
