package datastructure

const defaultHeapCapacity = 8

type PriorityRecord[T comparable] struct {
	Item     T
	Priority float64
}

// IndexedMinHeap binary min-heap dengan position index (item -> slot di array).
// pos selalu di update bareng setiap perpindahan record di heap, jadi Contains O(1) & ChangePriority O(logN).
// tidak thread-safe, caller yang harus serialize akses.
type IndexedMinHeap[T comparable] struct {
	heap []PriorityRecord[T] // len(heap) adalah capacity, record yang live cuma heap[:size]
	pos  map[T]int
	size int
}

func NewIndexedMinHeap[T comparable]() *IndexedMinHeap[T] {
	return NewIndexedMinHeapWithCapacity[T](defaultHeapCapacity)
}

func NewIndexedMinHeapWithCapacity[T comparable](capacity int) *IndexedMinHeap[T] {
	if capacity < 1 {
		capacity = 1
	}
	return &IndexedMinHeap[T]{
		heap: make([]PriorityRecord[T], capacity),
		pos:  make(map[T]int, capacity),
	}
}

// parent get index dari parent
func (h *IndexedMinHeap[T]) parent(index int) int {
	return (index - 1) / 2
}

// leftChild get index dari left child
func (h *IndexedMinHeap[T]) leftChild(index int) int {
	return 2*index + 1
}

// rightChild get index dari right child
func (h *IndexedMinHeap[T]) rightChild(index int) int {
	return 2*index + 2
}

// swap tukar record di slot i & j sekaligus update pos kedua item ke slot barunya.
// semua perpindahan record di heap harus lewat sini.
func (h *IndexedMinHeap[T]) swap(i, j int) {
	h.heap[i], h.heap[j] = h.heap[j], h.heap[i]
	h.pos[h.heap[i].Item] = i
	h.pos[h.heap[j].Item] = j
}

// grow double capacity array. cuma copy slot, index di pos tidak berubah.
func (h *IndexedMinHeap[T]) grow() {
	newHeap := make([]PriorityRecord[T], 2*len(h.heap))
	copy(newHeap, h.heap[:h.size])
	h.heap = newHeap
}

// heapifyUp mempertahankan heap property. selama parent lebih besar, swap lalu lanjut ke parent. O(logN).
func (h *IndexedMinHeap[T]) heapifyUp(index int) {
	for index != 0 && h.heap[index].Priority < h.heap[h.parent(index)].Priority {
		p := h.parent(index)
		h.swap(index, p)
		index = p
	}
}

// heapifyDown mempertahankan heap property. swap dengan child terkecil selama child lebih kecil. O(logN).
func (h *IndexedMinHeap[T]) heapifyDown(index int) {
	for {
		smallest := index
		left := h.leftChild(index)
		right := h.rightChild(index)

		if left < h.size && h.heap[left].Priority < h.heap[smallest].Priority {
			smallest = left
		}
		if right < h.size && h.heap[right].Priority < h.heap[smallest].Priority {
			smallest = right
		}
		if smallest == index {
			return
		}
		h.swap(index, smallest)
		index = smallest
	}
}

// Size jumlah record di heap
func (h *IndexedMinHeap[T]) Size() int {
	return h.size
}

func (h *IndexedMinHeap[T]) IsEmpty() bool {
	return h.size == 0
}

// Capacity ukuran backing array
func (h *IndexedMinHeap[T]) Capacity() int {
	return len(h.heap)
}

// Contains O(1), cuma lookup ke pos.
func (h *IndexedMinHeap[T]) Contains(item T) bool {
	_, ok := h.pos[item]
	return ok
}

// Priority priority sekarang dari item yang ada di heap.
func (h *IndexedMinHeap[T]) Priority(item T) (float64, bool) {
	idx, ok := h.pos[item]
	if !ok {
		return 0, false
	}
	return h.heap[idx].Priority, true
}

// Insert item baru. O(logN).
func (h *IndexedMinHeap[T]) Insert(item T, priority float64) error {
	if h.Contains(item) {
		return WrapErrorf(nil, ErrDuplicateItem, "insert %v: item already exists, use ChangePriority", item)
	}
	if h.size == len(h.heap) {
		h.grow()
	}

	index := h.size
	h.heap[index] = PriorityRecord[T]{Item: item, Priority: priority}
	h.pos[item] = index
	h.size++
	h.heapifyUp(index)
	return nil
}

// PeekMinRecord record dengan priority terkecil (index 0), tanpa di remove.
func (h *IndexedMinHeap[T]) PeekMinRecord() (PriorityRecord[T], error) {
	if h.IsEmpty() {
		return PriorityRecord[T]{}, WrapErrorf(nil, ErrEmptyQueue, "peek min: heap is empty")
	}
	return h.heap[0], nil
}

func (h *IndexedMinHeap[T]) PeekMin() (T, error) {
	rec, err := h.PeekMinRecord()
	return rec.Item, err
}

// RemoveMinRecord ambil record minimum & hapus dari heap. record terakhir dipindah ke root lalu heapifyDown(0). O(logN).
func (h *IndexedMinHeap[T]) RemoveMinRecord() (PriorityRecord[T], error) {
	if h.IsEmpty() {
		return PriorityRecord[T]{}, WrapErrorf(nil, ErrEmptyQueue, "remove min: heap is empty")
	}
	root := h.heap[0]
	last := h.size - 1
	if last > 0 {
		h.heap[0] = h.heap[last]
		h.pos[h.heap[0].Item] = 0
	}
	h.heap[last] = PriorityRecord[T]{}
	delete(h.pos, root.Item)
	h.size--
	h.heapifyDown(0)
	return root, nil
}

func (h *IndexedMinHeap[T]) RemoveMin() (T, error) {
	rec, err := h.RemoveMinRecord()
	return rec.Item, err
}

// ChangePriority update priority item (decrease-key / increase-key). O(logN).
// kalau priority baru lebih kecil dari parent heapifyUp, selain itu heapifyDown.
func (h *IndexedMinHeap[T]) ChangePriority(item T, priority float64) error {
	index, ok := h.pos[item]
	if !ok {
		return WrapErrorf(nil, ErrItemNotFound, "change priority %v: add it first", item)
	}
	h.heap[index].Priority = priority
	if index > 0 && priority < h.heap[h.parent(index)].Priority {
		h.heapifyUp(index)
	} else {
		h.heapifyDown(index)
	}
	return nil
}

// Validate cek heap property & konsistensi pos terhadap array heap.
func (h *IndexedMinHeap[T]) Validate() error {
	if len(h.pos) != h.size {
		return WrapErrorf(nil, ErrCorrupted, "position index has %d entries, heap size is %d", len(h.pos), h.size)
	}
	for i := 0; i < h.size; i++ {
		if i > 0 && h.heap[h.parent(i)].Priority > h.heap[i].Priority {
			return WrapErrorf(nil, ErrCorrupted, "heap property violated at index %d", i)
		}
		idx, ok := h.pos[h.heap[i].Item]
		if !ok || idx != i {
			return WrapErrorf(nil, ErrCorrupted, "position index of %v is stale at index %d", h.heap[i].Item, i)
		}
	}
	return nil
}
