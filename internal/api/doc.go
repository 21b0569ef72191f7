// Package api 定義 HTTP 路由並把請求轉交給對應的 handler。
//
// handlers 子包負責解析請求、呼叫服務層，
// 並把服務層的錯誤種類對應成 HTTP 狀態碼回覆給客戶端。
package api
