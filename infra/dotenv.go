package infra

import (
	"log"

	"github.com/joho/godotenv"
)

// loadDotEnv .envの値を環境変数に読み込む。既に設定されている環境変数は上書きしない
// ファイルがない場合は環境変数だけで動く
func loadDotEnv(files ...string) bool {
	if err := godotenv.Load(files...); err != nil {
		log.Printf("No %v file found; using environment variables", envFileNames(files))
		return false
	}
	return true
}

func envFileNames(files []string) []string {
	if len(files) == 0 {
		return []string{".env"}
	}
	return files
}
