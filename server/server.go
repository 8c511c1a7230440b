package server

import (
	"net/http"

	"github.com/gorilla/websocket"
	log "github.com/sirupsen/logrus"

	"ptc/calculator"
	"ptc/deque"
	"ptc/model"
)

type Server struct {
	addr     string
	upgrader websocket.Upgrader
	cfg      calculator.Config
}

func NewServer(addr string, upgrader websocket.Upgrader, cfg calculator.Config) *Server {
	return &Server{
		addr:     addr,
		upgrader: upgrader,
		cfg:      cfg,
	}
}

// serveWs handles websocket requests from the peer.
// 每个连接拥有独立的 Calculator 和历史记录
func (s *Server) serveWs(w http.ResponseWriter, r *http.Request) {
	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.WithError(err).Error("websocket 升级失败")
		return
	}
	defer conn.Close()

	hub := NewHub(calculator.NewCalculator(s.cfg), conn, deque.NewArrDeque(s.cfg.HistorySize))
	go hub.handleRequest()
	go hub.handleResponse()
	defer hub.Close()

	log.WithField("remote", r.RemoteAddr).Info("连接建立")
	for {
		var msg model.Msg
		err = conn.ReadJSON(&msg)
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				log.WithError(err).Warn("连接异常断开")
			}
			log.WithField("remote", r.RemoteAddr).Info("连接关闭")
			return
		}
		hub.msg <- msg
	}
}

func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/ws", func(w http.ResponseWriter, r *http.Request) {
		s.serveWs(w, r)
	})
	return mux
}

func (s *Server) Serve() error {
	log.WithField("addr", s.addr).Info("服务启动")
	return http.ListenAndServe(s.addr, s.Handler())
}
