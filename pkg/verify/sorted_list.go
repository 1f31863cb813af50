package verify

import (
	"lintang/minpq/pkg/datastructure"
	"sort"
)

// SortedList priority queue referensi: slice record yang selalu terurut by priority. semua operasi O(N), cuma buat oracle.
type SortedList[T comparable] struct {
	records []datastructure.PriorityRecord[T]
}

func NewSortedList[T comparable]() *SortedList[T] {
	return &SortedList[T]{
		records: make([]datastructure.PriorityRecord[T], 0),
	}
}

func (l *SortedList[T]) Len() int {
	return len(l.records)
}

func (l *SortedList[T]) find(item T) int {
	for i, rec := range l.records {
		if rec.Item == item {
			return i
		}
	}
	return -1
}

func (l *SortedList[T]) Contains(item T) bool {
	return l.find(item) != -1
}

func (l *SortedList[T]) Insert(item T, priority float64) error {
	if l.Contains(item) {
		return datastructure.WrapErrorf(nil, datastructure.ErrDuplicateItem, "insert %v", item)
	}
	i := sort.Search(len(l.records), func(i int) bool {
		return l.records[i].Priority > priority
	})
	l.records = append(l.records, datastructure.PriorityRecord[T]{})
	copy(l.records[i+1:], l.records[i:])
	l.records[i] = datastructure.PriorityRecord[T]{Item: item, Priority: priority}
	return nil
}

// Min record dengan priority terkecil. kalau ada tie, record yang paling dulu di insert.
func (l *SortedList[T]) Min() (datastructure.PriorityRecord[T], error) {
	if len(l.records) == 0 {
		return datastructure.PriorityRecord[T]{}, datastructure.WrapErrorf(nil, datastructure.ErrEmptyQueue, "min")
	}
	return l.records[0], nil
}

// Priority priority item di list.
func (l *SortedList[T]) Priority(item T) (float64, bool) {
	i := l.find(item)
	if i == -1 {
		return 0, false
	}
	return l.records[i].Priority, true
}

func (l *SortedList[T]) RemoveItem(item T) error {
	i := l.find(item)
	if i == -1 {
		return datastructure.WrapErrorf(nil, datastructure.ErrItemNotFound, "remove %v", item)
	}
	l.records = append(l.records[:i], l.records[i+1:]...)
	return nil
}

func (l *SortedList[T]) ChangePriority(item T, priority float64) error {
	if err := l.RemoveItem(item); err != nil {
		return datastructure.WrapErrorf(nil, datastructure.ErrItemNotFound, "change priority %v", item)
	}
	return l.Insert(item, priority)
}
