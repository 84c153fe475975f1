package automatic

import (
	"bufio"
	"encoding/base64"
	"errors"
	"fmt"
	"os"
	"strings"

	"lukechampine.com/frand"
)

var ErrBadSeed = errors.New("a seed must be 32 bytes, base64 encoded")

// GenerateSeeds creates n random 32-byte seeds for reproducible games.
func GenerateSeeds(n int) [][32]byte {
	seeds := make([][32]byte, n)
	for i := range seeds {
		frand.Read(seeds[i][:])
	}
	return seeds
}

// EncodeSeed uses URL-safe base64, which avoids / and + characters.
func EncodeSeed(seed [32]byte) string {
	return base64.RawURLEncoding.EncodeToString(seed[:])
}

// ParseSeed decodes a seed written by EncodeSeed. Standard base64 is
// accepted too.
func ParseSeed(s string) ([32]byte, error) {
	var seed [32]byte
	s = strings.TrimRight(strings.TrimSpace(s), "=")
	decoded, err := base64.RawURLEncoding.DecodeString(s)
	if err != nil {
		decoded, err = base64.RawStdEncoding.DecodeString(s)
		if err != nil {
			return seed, fmt.Errorf("%w: %v", ErrBadSeed, err)
		}
	}
	if len(decoded) != len(seed) {
		return seed, fmt.Errorf("%w: got %d bytes", ErrBadSeed, len(decoded))
	}
	copy(seed[:], decoded)
	return seed, nil
}

// RNGFromSeed returns a generator that always produces the same stream
// for the same seed.
func RNGFromSeed(seed [32]byte) *frand.RNG {
	return frand.NewCustom(seed[:], 1024, 12)
}

// SaveSeeds writes seeds to a file, one per line.
func SaveSeeds(seeds [][32]byte, path string) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create seed file: %w", err)
	}
	defer file.Close()

	writer := bufio.NewWriter(file)
	if _, err := writer.WriteString("# halma game seeds (base64 URL-safe encoded, 32 bytes each)\n"); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}
	for i, seed := range seeds {
		if _, err := writer.WriteString(EncodeSeed(seed) + "\n"); err != nil {
			return fmt.Errorf("failed to write seed %d: %w", i, err)
		}
	}
	return writer.Flush()
}

// LoadSeeds reads a file written by SaveSeeds. Blank lines and lines
// starting with # are skipped.
func LoadSeeds(path string) ([][32]byte, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open seed file: %w", err)
	}
	defer file.Close()

	var seeds [][32]byte
	scanner := bufio.NewScanner(file)
	lineNum := 0
	for scanner.Scan() {
		lineNum++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		seed, err := ParseSeed(line)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", lineNum, err)
		}
		seeds = append(seeds, seed)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("error reading seed file: %w", err)
	}
	return seeds, nil
}
