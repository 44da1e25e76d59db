package assets

import (
	"bufio"
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/go-gl/mathgl/mgl32"
)

// ErrMalformedSTL is returned when an STL file cannot be decoded
var ErrMalformedSTL = errors.New("malformed STL")

const (
	stlHeaderSize = 80
	stlFacetSize  = 50 // normal + 3 vertices (12 float32) + uint16 attribute

	// ModelExtent is the size of the largest bounding-box side after import
	ModelExtent = 2.0
)

type stlFacet struct {
	normal mgl32.Vec3
	v      [3]mgl32.Vec3
}

// LoadSTL reads an ASCII or binary STL file into mesh data
func LoadSTL(path string) (MeshData, error) {
	file, err := os.Open(path)
	if err != nil {
		return MeshData{}, fmt.Errorf("failed to open model: %w", err)
	}
	defer file.Close()

	mesh, err := ParseSTL(file)
	if err != nil {
		return MeshData{}, fmt.Errorf("%s: %w", path, err)
	}
	return mesh, nil
}

// ParseSTL decodes an STL stream. The format is detected from the size the binary
// header announces, falling back to the "solid" keyword for ASCII files. The mesh is
// recentred at the origin and scaled to ModelExtent.
func ParseSTL(r io.Reader) (MeshData, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return MeshData{}, fmt.Errorf("failed to read STL: %w", err)
	}

	var facets []stlFacet
	if isBinarySTL(data) {
		facets, err = parseBinarySTL(data)
	} else {
		facets, err = parseASCIISTL(data)
	}
	if err != nil {
		return MeshData{}, err
	}
	if len(facets) == 0 {
		return MeshData{}, fmt.Errorf("%w: no facets", ErrMalformedSTL)
	}

	return buildSTLMesh(facets), nil
}

func isBinarySTL(data []byte) bool {
	if len(data) >= stlHeaderSize+4 {
		count := binary.LittleEndian.Uint32(data[stlHeaderSize:])
		if int64(len(data)) == stlHeaderSize+4+int64(count)*stlFacetSize {
			return true
		}
	}
	// Some exporters write "solid" into binary headers, so also require a facet keyword
	return !(bytes.HasPrefix(data, []byte("solid")) && bytes.Contains(data, []byte("facet")))
}

func parseBinarySTL(data []byte) ([]stlFacet, error) {
	if len(data) < stlHeaderSize+4 {
		return nil, fmt.Errorf("%w: %d bytes is shorter than the header", ErrMalformedSTL, len(data))
	}

	count := binary.LittleEndian.Uint32(data[stlHeaderSize:])
	body := data[stlHeaderSize+4:]
	if int64(len(body)) < int64(count)*stlFacetSize {
		return nil, fmt.Errorf("%w: header announces %d facets, data holds %d", ErrMalformedSTL, count, len(body)/stlFacetSize)
	}

	readVec := func(b []byte) mgl32.Vec3 {
		return mgl32.Vec3{
			math.Float32frombits(binary.LittleEndian.Uint32(b[0:])),
			math.Float32frombits(binary.LittleEndian.Uint32(b[4:])),
			math.Float32frombits(binary.LittleEndian.Uint32(b[8:])),
		}
	}

	facets := make([]stlFacet, count)
	for i := range facets {
		b := body[i*stlFacetSize:]
		facets[i] = stlFacet{
			normal: readVec(b[0:]),
			v:      [3]mgl32.Vec3{readVec(b[12:]), readVec(b[24:]), readVec(b[36:])},
		}
	}
	return facets, nil
}

func parseASCIISTL(data []byte) ([]stlFacet, error) {
	scanner := bufio.NewScanner(bytes.NewReader(data))

	var (
		facets  []stlFacet
		current stlFacet
		n       int
		line    int
	)

	parseVec := func(fields []string) (mgl32.Vec3, error) {
		var v mgl32.Vec3
		if len(fields) < 3 {
			return v, fmt.Errorf("%w: line %d: expected 3 coordinates", ErrMalformedSTL, line)
		}
		for k := range 3 {
			f, err := strconv.ParseFloat(fields[k], 32)
			if err != nil {
				return v, fmt.Errorf("%w: line %d: %v", ErrMalformedSTL, line, err)
			}
			v[k] = float32(f)
		}
		return v, nil
	}

	for scanner.Scan() {
		line++
		fields := strings.Fields(scanner.Text())
		if len(fields) == 0 {
			continue
		}

		switch fields[0] {
		case "facet":
			current = stlFacet{}
			n = 0
			if len(fields) >= 2 && fields[1] == "normal" {
				normal, err := parseVec(fields[2:])
				if err != nil {
					return nil, err
				}
				current.normal = normal
			}

		case "vertex":
			if n >= 3 {
				return nil, fmt.Errorf("%w: line %d: more than 3 vertices in facet", ErrMalformedSTL, line)
			}
			v, err := parseVec(fields[1:])
			if err != nil {
				return nil, err
			}
			current.v[n] = v
			n++

		case "endfacet":
			if n != 3 {
				return nil, fmt.Errorf("%w: line %d: facet has %d vertices", ErrMalformedSTL, line, n)
			}
			facets = append(facets, current)
		}
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("error reading ASCII STL: %w", err)
	}

	return facets, nil
}

// buildSTLMesh flattens facets into an indexed triangle list, fills missing
// normals, normalizes size and position, and projects UVs from the XZ plane
func buildSTLMesh(facets []stlFacet) MeshData {
	lo := facets[0].v[0]
	hi := lo
	for _, f := range facets {
		for _, v := range f.v {
			for k := range 3 {
				lo[k] = min(lo[k], v[k])
				hi[k] = max(hi[k], v[k])
			}
		}
	}

	size := hi.Sub(lo)
	center := lo.Add(size.Mul(0.5))
	extent := max(size[0], size[1], size[2])
	scale := float32(1)
	if extent > 0 {
		scale = ModelExtent / extent
	}

	uv := func(p mgl32.Vec3) mgl32.Vec2 {
		var u, v float32
		if size[0] > 0 {
			u = (p[0] - lo[0]) / size[0]
		}
		if size[2] > 0 {
			v = (p[2] - lo[2]) / size[2]
		}
		return mgl32.Vec2{u, v}
	}

	mesh := MeshData{
		Vertices: make([]float32, 0, len(facets)*3*FloatsPerVertex),
		Indices:  make([]uint32, 0, len(facets)*3),
	}

	for _, f := range facets {
		normal := f.normal
		if normal.Len() == 0 {
			normal = faceNormal(f.v[0], f.v[1], f.v[2])
		} else {
			normal = normal.Normalize()
		}

		for _, v := range f.v {
			mesh.Indices = append(mesh.Indices, uint32(mesh.VertexCount()))
			mesh.appendVertex(v.Sub(center).Mul(scale), normal, uv(v))
		}
	}

	return mesh
}

// faceNormal returns the unit normal of a counter-clockwise triangle,
// or the zero vector for a degenerate one
func faceNormal(a, b, c mgl32.Vec3) mgl32.Vec3 {
	n := b.Sub(a).Cross(c.Sub(a))
	if n.Len() == 0 {
		return n
	}
	return n.Normalize()
}
