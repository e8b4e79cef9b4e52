package api

import (
	"net/http"

	"github.com/gorilla/websocket"
	"github.com/vmihailenco/msgpack/v5"

	"github.com/ledgerd/ledgerd/internal/utils/logging"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

// handleEvents streams node events to the client as msgpack-encoded
// binary frames until either side closes.
func (a *Api) handleEvents(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		logging.WithError(err).Error("upgrading event stream")
		return
	}
	defer conn.Close()

	sub, cancel := a.n.Events().Subscribe()
	defer cancel()

	// drain reads so client closes are noticed
	go func() {
		defer cancel()
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()

	for ev := range sub {
		data, err := msgpack.Marshal(&ev)
		if err != nil {
			logging.WithError(err).Error("encoding event")
			continue
		}

		if err := conn.WriteMessage(websocket.BinaryMessage, data); err != nil {
			return
		}
	}
}
