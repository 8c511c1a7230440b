package calculator

import (
	"ptc/model"
)

// 扫描结果推送
type CalcHub struct {
	Points chan model.SweepPoint // 每完成一个点推送一次
}

func NewCalcHub() *CalcHub {
	return &CalcHub{
		Points: make(chan model.SweepPoint, 64),
	}
}

// 推送单个点，无人接收且缓冲已满时丢弃，不阻塞计算
func (ch *CalcHub) PushPoint(p model.SweepPoint) bool {
	select {
	case ch.Points <- p:
		return true
	default:
		return false
	}
}
