package systems

import (
	"log"
	"time"
)

// SpawnMonitorInterval 看门狗扫描间隔
// 远大于单次扫描成本，避免监控本身成为负担
const SpawnMonitorInterval = 30 * time.Second

// SpawnMonitor 生成看门狗
//
// 后台计时器只负责往带缓冲的信号通道投递扫描请求，
// 实际扫描由 Director 在帧开始时同步执行，
// 所有实体变更仍发生在单线程帧驱动内。
//
// 判定条件：扫描窗口内活跃敌人数量零增长、累计生成数
// 也零增长、且生成器本应处于活跃状态（未停靠、未达上限），
// 视为生成流程卡死，重置生成状态。
type SpawnMonitor struct {
	spawner   *EnemySpawner
	activeSet *ActiveEnemySet

	ticker *time.Ticker
	done   chan struct{}

	// Signal 带缓冲的扫描信号通道，由 Director 排空
	Signal chan struct{}

	lastTotalSpawned int
	lastActiveCount  int
	hasBaseline      bool
}

// NewSpawnMonitor 创建生成看门狗
func NewSpawnMonitor(spawner *EnemySpawner, activeSet *ActiveEnemySet) *SpawnMonitor {
	return &SpawnMonitor{
		spawner:   spawner,
		activeSet: activeSet,
		Signal:    make(chan struct{}, 1),
	}
}

// Start 启动后台计时器
// 重复调用是空操作
func (m *SpawnMonitor) Start() {
	if m.ticker != nil {
		return
	}
	m.ticker = time.NewTicker(SpawnMonitorInterval)
	m.done = make(chan struct{})

	go func() {
		for {
			select {
			case <-m.ticker.C:
				// 通道已满说明上一次扫描尚未执行，丢弃本次信号
				select {
				case m.Signal <- struct{}{}:
				default:
				}
			case <-m.done:
				return
			}
		}
	}()

	log.Printf("[SpawnMonitor] Started with %s interval", SpawnMonitorInterval)
}

// Stop 停止后台计时器
func (m *SpawnMonitor) Stop() {
	if m.ticker == nil {
		return
	}
	m.ticker.Stop()
	close(m.done)
	m.ticker = nil
	log.Printf("[SpawnMonitor] Stopped")
}

// Scan 执行一次同步扫描
//
// 必须在帧驱动线程内调用。
//
// 返回：
//
//	是否执行了修复
func (m *SpawnMonitor) Scan(spawnerShouldBeActive bool) bool {
	totalSpawned := m.spawner.TotalSpawned
	activeCount := m.activeSet.Len()

	defer func() {
		m.lastTotalSpawned = totalSpawned
		m.lastActiveCount = activeCount
		m.hasBaseline = true
	}()

	// 首次扫描只建立基线
	if !m.hasBaseline {
		return false
	}

	if !spawnerShouldBeActive {
		return false
	}

	if totalSpawned > m.lastTotalSpawned || activeCount > m.lastActiveCount {
		return false
	}

	log.Printf("[SpawnMonitor] Spawn pipeline stalled (spawned=%d, active=%d over %s), resetting spawn state",
		totalSpawned, activeCount, SpawnMonitorInterval)
	m.spawner.ResetSpawnState()
	return true
}
