package utils

import (
	"encoding/binary"
	"hash/fnv"

	"github.com/google/uuid"
)

// idNamespace - пространство имен для детерминированных UUID (SHA1, v5).
var idNamespace = uuid.MustParse("6f1c3c0e-6d1a-4c1e-9a52-5b1f1b0b7a11")

// SeededRNG - детерминированный поток чисел [0,1).
// Значение зависит только от (Seed, Counter): поток можно сохранить в
// состоянии и продолжить в реплее с той же позиции.
type SeededRNG struct {
	Seed    int64
	Counter uint64
}

// NewSeededRNG создает поток с начала.
func NewSeededRNG(seed int64) *SeededRNG {
	return &SeededRNG{Seed: seed}
}

// Next возвращает следующее число из [0,1) и сдвигает счетчик ровно на 1.
func (r *SeededRNG) Next() float64 {
	v := mix(r.Seed, r.Counter)
	r.Counter++
	// 53 бита дают равномерный float64 в [0, 1)
	return float64(v>>11) / float64(1<<53)
}

// Intn возвращает целое в [0,n), расходуя одно значение потока.
func (r *SeededRNG) Intn(n int) int {
	if n <= 0 {
		return 0
	}
	i := int(r.Next() * float64(n))
	if i >= n {
		i = n - 1
	}
	return i
}

// mix - fnv-хэш (seed, counter) с финализатором splitmix64.
func mix(seed int64, counter uint64) uint64 {
	var buf [16]byte
	binary.LittleEndian.PutUint64(buf[:8], uint64(seed))
	binary.LittleEndian.PutUint64(buf[8:], counter)

	h := fnv.New64a()
	_, _ = h.Write(buf[:])
	z := h.Sum64() + 0x9e3779b97f4a7c15
	z = (z ^ (z >> 30)) * 0xbf58476d1ce4e5b9
	z = (z ^ (z >> 27)) * 0x94d049bb133111eb
	return z ^ (z >> 31)
}

// DeterministicID создает полноценный ID для заспавненной сущности.
// Один и тот же (seed, prefix, counter) всегда дает один и тот же ID,
// поэтому реплеи воспроизводят идентификаторы точно.
func DeterministicID(seed int64, prefix string, counter uint64) string {
	var buf [16]byte
	binary.LittleEndian.PutUint64(buf[:8], uint64(seed))
	binary.LittleEndian.PutUint64(buf[8:], counter)
	id := uuid.NewSHA1(idNamespace, append([]byte(prefix), buf[:]...))
	return prefix + id.String()[:8]
}
