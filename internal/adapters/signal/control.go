package signal

import "encoding/json"

func (ctl *Controller) handlePing(c *wsConn) {
	b, _ := json.Marshal(struct {
		Type string `json:"type"`
	}{Type: "pong"})
	_ = c.TrySend(b)
}
