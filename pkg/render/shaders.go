package render

import (
	_ "embed"
	"fmt"

	"github.com/leterax/go-viewer/internal/openglhelper"
	"github.com/leterax/go-viewer/pkg/config"
)

//go:embed shaders/mesh.vert
var defaultVertexShader string

//go:embed shaders/mesh.frag
var defaultFragmentShader string

// loadShader builds the program from the configured files, or from the embedded
// sources when no files are configured
func loadShader(cfg config.ShadersConfig) (*openglhelper.Shader, error) {
	if cfg.Vertex == "" {
		shader, err := openglhelper.NewShader(defaultVertexShader, defaultFragmentShader)
		if err != nil {
			return nil, fmt.Errorf("embedded shaders: %w", err)
		}
		return shader, nil
	}
	return openglhelper.LoadShaderFromFiles(cfg.Vertex, cfg.Fragment)
}
