package service

import "sync"

// roomLocks 以房間 ID 為單位提供互斥鎖，
// 讓同一個房間的 load-validate-mutate-persist 流程序列化執行，
// 不同房間之間不會互相競爭。房間結束後鎖會從鎖表移除
type roomLocks struct {
	mu    sync.Mutex
	locks map[uint]*sync.Mutex
}

func newRoomLocks() *roomLocks {
	return &roomLocks{locks: make(map[uint]*sync.Mutex)}
}

// lock 取得房間鎖。取得後會重新確認鎖表中的項目沒有被
// release 換掉，拿到過期鎖的呼叫方會放掉並重試
func (l *roomLocks) lock(roomID uint) *sync.Mutex {
	for {
		l.mu.Lock()
		m, ok := l.locks[roomID]
		if !ok {
			m = &sync.Mutex{}
			l.locks[roomID] = m
		}
		l.mu.Unlock()

		m.Lock()

		l.mu.Lock()
		current := l.locks[roomID]
		l.mu.Unlock()
		if current == m {
			return m
		}
		m.Unlock()
	}
}

// release 把房間的鎖從鎖表移除，避免鎖表隨著結束的房間增長。
// 呼叫方必須持有 m；過期的 m 不會移除現行的項目
func (l *roomLocks) release(roomID uint, m *sync.Mutex) {
	l.mu.Lock()
	if l.locks[roomID] == m {
		delete(l.locks, roomID)
	}
	l.mu.Unlock()
}
