package handlers

import (
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"
)

// AssetHandler は節気・日替わり画像などの静的ファイルを配信します。
type AssetHandler struct {
	root string
}

// NewAssetHandler はルートディレクトリ配下を配信するAssetHandlerを作成します。
func NewAssetHandler(root string) *AssetHandler {
	return &AssetHandler{root: root}
}

// 拡張子 → Content-Type の固定テーブル。未知の拡張子は octet-stream。
var contentTypes = map[string]string{
	".png":  "image/png",
	".jpg":  "image/jpeg",
	".jpeg": "image/jpeg",
	".gif":  "image/gif",
	".svg":  "image/svg+xml",
}

// ServeHandler は GET /api/assets/*filepath を処理します。
// 読み取りに失敗した場合は理由を問わず404を返します。
func (h *AssetHandler) ServeHandler(c *gin.Context) {
	rel := strings.TrimPrefix(c.Param("filepath"), "/")
	if rel == "" {
		c.String(http.StatusNotFound, "Not found")
		return
	}

	// ルート外へのパス逸脱を拒否する
	path := filepath.Join(h.root, filepath.FromSlash(rel))
	if !strings.HasPrefix(path, filepath.Clean(h.root)+string(filepath.Separator)) {
		c.String(http.StatusNotFound, "Not found")
		return
	}

	data, err := os.ReadFile(path)
	if err != nil {
		c.String(http.StatusNotFound, "Not found")
		return
	}

	contentType, ok := contentTypes[strings.ToLower(filepath.Ext(path))]
	if !ok {
		contentType = "application/octet-stream"
	}

	c.Header("Cache-Control", "public, max-age=86400") // キャッシュ 1日
	c.Data(http.StatusOK, contentType, data)
}
