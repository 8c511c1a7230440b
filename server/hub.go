package server

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	log "github.com/sirupsen/logrus"

	"ptc/calculator"
	"ptc/deque"
	"ptc/model"
)

// 消息类型
const (
	// request
	typeEnv     = "env"
	typeSet     = "set"
	typeStart   = "start"
	typeSweep   = "sweep"
	typeHistory = "history"
	typeStop    = "stop"

	// response
	typeEnvSet    = "envSet"
	typeResult    = "result"
	typePoint     = "point"
	typeSweepDone = "sweepDone"
	typeStopped   = "stopped"
	typeError     = "error"
)

type jsonWriter interface {
	WriteJSON(v interface{}) error
}

// Hub 负责单个连接上的请求分发与结果回写，只有 handleResponse 写连接
type Hub struct {
	c       calculator.Calculator
	conn    jsonWriter
	history deque.Deque // 只在 handleRequest 中访问

	// request
	msg chan model.Msg
	// response
	reply chan model.Msg
	swept chan model.Msg

	quit      chan struct{}
	closeOnce sync.Once

	mu     sync.Mutex
	cancel context.CancelFunc // 正在进行的扫描
}

type setReq struct {
	Param string  `json:"param"`
	Value float64 `json:"value"`
}

type sweepResult struct {
	Points  []model.SweepPoint       `json:"points"`
	Summary *calculator.SweepSummary `json:"summary,omitempty"`
}

func NewHub(c calculator.Calculator, conn jsonWriter, history deque.Deque) *Hub {
	return &Hub{
		c:       c,
		conn:    conn,
		history: history,
		msg:     make(chan model.Msg, 10),
		reply:   make(chan model.Msg, 10),
		swept:   make(chan model.Msg, 1),
		quit:    make(chan struct{}),
	}
}

// 停止两个循环并取消正在进行的扫描
func (h *Hub) Close() {
	h.closeOnce.Do(func() {
		h.stopSweep()
		close(h.quit)
	})
}

func (h *Hub) handleResponse() {
	points := h.c.GetCalcHub().Points
	for {
		select {
		case <-h.quit:
			return
		case reply := <-h.reply:
			h.write(reply)
		case p := <-points:
			h.writePoint(p)
		case reply := <-h.swept:
			// 扫描返回前所有点都已推入 CalcHub，先把剩余的点写完
			h.drainPoints()
			h.write(reply)
		}
	}
}

func (h *Hub) drainPoints() {
	points := h.c.GetCalcHub().Points
	for {
		select {
		case p := <-points:
			h.writePoint(p)
		default:
			return
		}
	}
}

func (h *Hub) writePoint(p model.SweepPoint) {
	data, err := json.Marshal(p)
	if err != nil {
		log.WithError(err).Error("序列化扫描点失败")
		return
	}
	h.write(model.Msg{Type: typePoint, Content: string(data)})
}

func (h *Hub) write(reply model.Msg) {
	if err := h.conn.WriteJSON(&reply); err != nil {
		log.WithError(err).WithField("type", reply.Type).Error("写回消息失败")
	}
}

func (h *Hub) handleRequest() {
	for {
		select {
		case <-h.quit:
			return
		case msg := <-h.msg:
			h.handle(msg)
		}
	}
}

func (h *Hub) handle(msg model.Msg) {
	log.WithField("type", msg.Type).Debug("收到请求")
	switch msg.Type {
	case typeEnv:
		in := h.c.Inputs()
		if msg.Content != "" {
			if err := json.Unmarshal([]byte(msg.Content), &in); err != nil {
				h.fail(fmt.Errorf("env: %w", err))
				return
			}
		}
		h.c.SetInputs(in)
		h.respondJSON(typeEnvSet, in)
	case typeSet:
		var req setReq
		if err := json.Unmarshal([]byte(msg.Content), &req); err != nil {
			h.fail(fmt.Errorf("set: %w", err))
			return
		}
		if err := h.c.Set(req.Param, req.Value); err != nil {
			h.fail(err)
			return
		}
		h.respondJSON(typeEnvSet, h.c.Inputs())
	case typeStart:
		in := h.c.Inputs()
		result, err := h.c.Run()
		if err != nil {
			h.fail(err)
			return
		}
		h.history.AddLast(model.Snapshot{Time: time.Now(), Inputs: in, Result: result})
		h.respondJSON(typeResult, result)
	case typeSweep:
		var req model.SweepReq
		if err := json.Unmarshal([]byte(msg.Content), &req); err != nil {
			h.fail(fmt.Errorf("sweep: %w", err))
			return
		}
		h.startSweep(req)
	case typeHistory:
		h.respondJSON(typeHistory, h.history.Slice())
	case typeStop:
		h.stopSweep()
		h.send(model.Msg{Type: typeStopped, Content: "stopped"})
	default:
		h.fail(fmt.Errorf("no such type %q", msg.Type))
	}
}

// 扫描在后台进行，同一时刻只允许一个扫描
func (h *Hub) startSweep(req model.SweepReq) {
	values, err := calculator.Span(req.From, req.To, req.Steps)
	if err != nil {
		h.fail(err)
		return
	}
	if _, err := calculator.GetParam(h.c.Inputs(), req.Param); err != nil {
		h.fail(err)
		return
	}

	h.mu.Lock()
	if h.cancel != nil {
		h.mu.Unlock()
		h.fail(fmt.Errorf("a sweep is already running"))
		return
	}
	ctx, cancel := context.WithCancel(context.Background())
	h.cancel = cancel
	h.mu.Unlock()

	log.WithFields(log.Fields{
		"param": req.Param,
		"from":  req.From,
		"to":    req.To,
		"steps": req.Steps,
	}).Info("开始参数扫描")
	go func() {
		points, err := h.c.Sweep(ctx, req.Param, values)
		h.clearSweep(cancel)
		if err != nil {
			h.fail(err)
			return
		}
		res := sweepResult{Points: points}
		if s := calculator.Summarize(points); s.Failed < s.Points {
			res.Summary = &s
		}
		data, err := json.Marshal(res)
		if err != nil {
			h.fail(err)
			return
		}
		select {
		case h.swept <- model.Msg{Type: typeSweepDone, Content: string(data)}:
		case <-h.quit:
		}
	}()
}

func (h *Hub) stopSweep() {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.cancel != nil {
		h.cancel()
	}
}

func (h *Hub) clearSweep(cancel context.CancelFunc) {
	h.mu.Lock()
	defer h.mu.Unlock()
	cancel()
	h.cancel = nil
}

func (h *Hub) respondJSON(typ string, v interface{}) {
	data, err := json.Marshal(v)
	if err != nil {
		h.fail(err)
		return
	}
	h.send(model.Msg{Type: typ, Content: string(data)})
}

func (h *Hub) fail(err error) {
	log.WithError(err).Warn("请求处理失败")
	h.send(model.Msg{Type: typeError, Content: err.Error()})
}

// 连接关闭后丢弃回复
func (h *Hub) send(reply model.Msg) {
	select {
	case h.reply <- reply:
	case <-h.quit:
	}
}
