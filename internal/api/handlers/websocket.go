package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"

	"debate_arena/internal/service"
	"debate_arena/internal/utils"
)

// 定義 WebSocket 升級器
var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true // 注意：在生產環境中，應該檢查 origin
	},
}

// WebSocketHandler 處理 WebSocket 連接
type WebSocketHandler struct {
	hub         *service.Hub
	roomService *service.RoomService
}

// NewWebSocketHandler 創建一個新的 WebSocketHandler 實例
func NewWebSocketHandler(hub *service.Hub, roomService *service.RoomService) *WebSocketHandler {
	return &WebSocketHandler{
		hub:         hub,
		roomService: roomService,
	}
}

// HandleWebSocket 處理 WebSocket 連接請求。
// token 以查詢參數提供且為可選，沒有 token 的連線視為匿名觀眾，
// 可以加入房間觀看但無法發言。加入房間透過 join_room 訊息完成，
// 重連後必須重新加入
func (h *WebSocketHandler) HandleWebSocket(c *gin.Context) {
	var userID uint
	if token := c.Query("token"); token != "" {
		claims, err := utils.ParseToken(token)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid or expired token"})
			return
		}
		userID = claims.UserID
	}

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "升級WebSocket失敗"})
		return
	}

	// 連線中斷前不會返回
	h.hub.HandleConnection(conn, userID, h.roomService)
}
