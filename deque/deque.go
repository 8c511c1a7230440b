/**
 *
 * 利用数组实现双端队列，用于保存服务端最近的计算结果
 * 队列满时从队首挤出最旧的记录
 *
 */

package deque

import "ptc/model"

type Deque interface {
	// 队列的长度
	Size() int

	// 容量
	Capacity() int

	// 正向遍历
	Traverse(f func(i int, item *model.Snapshot))

	// 在队列结尾增加一个元素，队列满时挤出队首
	AddLast(item model.Snapshot)

	// 在队列头部删除一个元素
	RemoveFirst() (model.Snapshot, bool)

	// 按顺序复制出全部元素
	Slice() []model.Snapshot

	IsFull() bool

	IsEmpty() bool
}
