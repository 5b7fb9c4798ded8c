package game

import (
	"fmt"
	"log"
	"sort"
	"time"

	"github.com/quasilyte/gdata/v2"
	"gopkg.in/yaml.v3"
)

// HighScoreEntry 排行榜条目
type HighScoreEntry struct {
	Score               int    `yaml:"score"`               // 最终得分
	Wave                int    `yaml:"wave"`                // 达到的波次
	SurvivalTimeSeconds int    `yaml:"survivalTimeSeconds"` // 存活时长（秒）
	Date                string `yaml:"date"`                // ISO 8601 日期
}

// 排行榜存储常量
const (
	// MaxHighScores 排行榜固定条目数
	MaxHighScores = 5

	scoresObject   = "horde"
	scoresProperty = "highscores"
)

// ScoreManager 排行榜管理器
//
// 职责：
//   - 维护固定5条、按得分降序的无尽模式排行榜
//   - 通过 gdata 持久化到客户端本地存储（YAML 序列化数组）
//
// 架构说明：
//   - gdataManager 可为 nil（降级模式，仅内存排行榜）
//   - 由 HordeSystem 在局终时调用，UI 通过 Director 读取
type ScoreManager struct {
	gdataManager *gdata.Manager
	scores       []HighScoreEntry
}

// NewScoreManager 创建排行榜管理器
//
// 参数：
//   - gdataManager: gdata 跨平台存储管理器，可为 nil（降级模式）
func NewScoreManager(gdataManager *gdata.Manager) *ScoreManager {
	sm := &ScoreManager{
		gdataManager: gdataManager,
		scores:       []HighScoreEntry{},
	}

	if err := sm.load(); err != nil {
		// 加载失败不是致命错误，使用空排行榜
		log.Printf("[ScoreManager] Warning: Failed to load high scores: %v (starting empty)", err)
	}

	return sm
}

// load 从 gdata 加载排行榜
func (sm *ScoreManager) load() error {
	if sm.gdataManager == nil {
		return nil
	}

	if !sm.gdataManager.ObjectPropExists(scoresObject, scoresProperty) {
		return nil
	}

	data, err := sm.gdataManager.LoadObjectProp(scoresObject, scoresProperty)
	if err != nil {
		return fmt.Errorf("failed to load high scores: %w", err)
	}

	var scores []HighScoreEntry
	if err := yaml.Unmarshal(data, &scores); err != nil {
		return fmt.Errorf("failed to unmarshal high scores: %w", err)
	}

	sm.scores = scores
	sm.sortAndTrim()
	return nil
}

// save 保存排行榜到 gdata
func (sm *ScoreManager) save() error {
	if sm.gdataManager == nil {
		// 降级模式：无法持久化，但不报错
		return nil
	}

	data, err := yaml.Marshal(sm.scores)
	if err != nil {
		return fmt.Errorf("failed to marshal high scores: %w", err)
	}

	if err := sm.gdataManager.SaveObjectProp(scoresObject, scoresProperty, data); err != nil {
		return fmt.Errorf("failed to save high scores: %w", err)
	}

	return nil
}

// sortAndTrim 按得分降序排序并截断到固定条目数
func (sm *ScoreManager) sortAndTrim() {
	sort.SliceStable(sm.scores, func(i, j int) bool {
		return sm.scores[i].Score > sm.scores[j].Score
	})
	if len(sm.scores) > MaxHighScores {
		sm.scores = sm.scores[:MaxHighScores]
	}
}

// GetHighScores 返回排行榜副本（按得分降序）
func (sm *ScoreManager) GetHighScores() []HighScoreEntry {
	out := make([]HighScoreEntry, len(sm.scores))
	copy(out, sm.scores)
	return out
}

// IsNewHighScore 判断得分是否能进入排行榜
func (sm *ScoreManager) IsNewHighScore(score int) bool {
	if score <= 0 {
		return false
	}
	if len(sm.scores) < MaxHighScores {
		return true
	}
	return score > sm.scores[len(sm.scores)-1].Score
}

// SaveHighScore 将一局的成绩合并进排行榜并持久化
//
// 参数：
//   - score: 最终得分
//   - wave: 达到的波次
//   - survivalSeconds: 存活时长（秒）
//
// 返回：
//   - bool: 成绩是否进入了排行榜
//   - error: 持久化失败时返回错误（成绩仍保留在内存中）
func (sm *ScoreManager) SaveHighScore(score, wave, survivalSeconds int) (bool, error) {
	if !sm.IsNewHighScore(score) {
		return false, nil
	}

	entry := HighScoreEntry{
		Score:               score,
		Wave:                wave,
		SurvivalTimeSeconds: survivalSeconds,
		Date:                time.Now().UTC().Format(time.RFC3339),
	}
	sm.scores = append(sm.scores, entry)
	sm.sortAndTrim()

	if err := sm.save(); err != nil {
		return true, err
	}

	log.Printf("[ScoreManager] New high score saved: score=%d, wave=%d, survival=%s",
		score, wave, FormatSurvivalTime(survivalSeconds))
	return true, nil
}

// FormatSurvivalTime 将存活秒数格式化为 "MM:SS"
// 超过一小时显示为 "HH:MM:SS"
func FormatSurvivalTime(seconds int) string {
	if seconds < 0 {
		seconds = 0
	}
	h := seconds / 3600
	m := (seconds % 3600) / 60
	s := seconds % 60
	if h > 0 {
		return fmt.Sprintf("%02d:%02d:%02d", h, m, s)
	}
	return fmt.Sprintf("%02d:%02d", m, s)
}
