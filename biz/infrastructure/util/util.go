package util

import (
	"encoding/json"

	"school-leave/biz/infrastructure/util/log"
)

// JSONF 序列化为json字符串，用于日志输出
func JSONF(v any) string {
	data, err := json.Marshal(v)
	if err != nil {
		log.Error("JSON序列化失败: %v", err)
		return ""
	}
	return string(data)
}
