package deque

import (
	"ptc/model"
)

const (
	// 数组大小基数
	base = 8
)

// 环形数组：start 为队首下标，size 为元素个数
type ArrDeque struct {
	arr   ArrType
	start int

	// 元素个数
	size int
	// 容量
	capacity int
}

type ArrType []model.Snapshot

// 工厂方法，容量向上取整到 base 的倍数
func NewArrDeque(capacity int) *ArrDeque {
	if capacity <= 0 {
		capacity = base
	}
	remainder := capacity % base
	if remainder != 0 {
		capacity = capacity - remainder + base
	}
	return &ArrDeque{
		arr:      make([]model.Snapshot, capacity),
		capacity: capacity,
	}
}

func (ad *ArrDeque) Size() int {
	return ad.size
}

func (ad *ArrDeque) Capacity() int {
	return ad.capacity
}

// 逻辑下标转数组下标
func (ad *ArrDeque) index(i int) int {
	return (ad.start + i) % ad.capacity
}

func (ad *ArrDeque) Traverse(f func(i int, item *model.Snapshot)) {
	for k := 0; k < ad.size; k++ {
		f(k, &ad.arr[ad.index(k)])
	}
}

func (ad *ArrDeque) AddLast(item model.Snapshot) {
	if ad.IsFull() {
		ad.RemoveFirst()
	}
	ad.arr[ad.index(ad.size)] = item
	ad.size++
}

func (ad *ArrDeque) RemoveFirst() (model.Snapshot, bool) {
	if ad.IsEmpty() {
		return model.Snapshot{}, false
	}
	item := ad.arr[ad.start]
	ad.arr[ad.start] = model.Snapshot{}
	ad.start = (ad.start + 1) % ad.capacity
	ad.size--
	if ad.size == 0 {
		ad.start = 0
	}
	return item, true
}

func (ad *ArrDeque) Slice() []model.Snapshot {
	res := make([]model.Snapshot, 0, ad.size)
	ad.Traverse(func(_ int, item *model.Snapshot) {
		res = append(res, *item)
	})
	return res
}

func (ad *ArrDeque) IsFull() bool {
	return ad.size == ad.capacity
}

func (ad *ArrDeque) IsEmpty() bool {
	return ad.size == 0
}
