package core

import (
	"fmt"
	"sort"
)

// DefaultChunkSize is the network's default storage chunk size.
const DefaultChunkSize = 512 * 1024

// Chunk is one fixed-size slice of a repository's data, tagged with its
// position in the original byte stream.
type Chunk struct {
	Index uint32
	Data  []byte
}

// ChunkData splits data into chunkSize-sized chunks. The final chunk may
// be smaller than chunkSize.
func ChunkData(data []byte, chunkSize int) []Chunk {
	if len(data) == 0 {
		return nil
	}

	var chunks []Chunk
	for i, start := 0, 0; start < len(data); i, start = i+1, start+chunkSize {
		end := start + chunkSize
		if end > len(data) {
			end = len(data)
		}
		chunks = append(chunks, Chunk{Index: uint32(i), Data: data[start:end]})
	}
	return chunks
}

// ReassembleChunks sorts chunks by index and concatenates their data. It
// fails if any index in the contiguous 0..n-1 range is missing.
func ReassembleChunks(chunks []Chunk) ([]byte, error) {
	if len(chunks) == 0 {
		return []byte{}, nil
	}

	sorted := make([]Chunk, len(chunks))
	copy(sorted, chunks)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].Index < sorted[j].Index })

	for i, c := range sorted {
		if c.Index != uint32(i) {
			return nil, fmt.Errorf("%w: missing chunk index %d, found %d", ErrInvalidChunkIndex, i, c.Index)
		}
	}

	var result []byte
	for _, c := range sorted {
		result = append(result, c.Data...)
	}
	return result, nil
}
