// Package main is the entry point for the geomview demo viewer.
package main

import (
	"fmt"
	"math/rand"
	"os"

	"github.com/go-gl/mathgl/mgl32"
	"go.uber.org/zap"

	"github.com/calder3d/geomview/internal/config"
	"github.com/calder3d/geomview/internal/logger"
	"github.com/calder3d/geomview/internal/viewer"
	"github.com/calder3d/geomview/pkg/geom"
)

func main() {
	config.ParseFlags()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Config error: %v\n", err)
		os.Exit(1)
	}

	if err := logger.Init(cfg.Logging.Level, cfg.Logging.LogFile); err != nil {
		fmt.Fprintf(os.Stderr, "Logger error: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	logger.Info("=== geomview ===")
	logger.Sugar.Debugf("Config: %+v", cfg)

	v := viewer.New(cfg, viewer.DefaultRegistry())
	if err := populate(v); err != nil {
		logger.Error("failed to build demo scene", zap.Error(err))
		os.Exit(1)
	}

	if err := v.Run(); err != nil {
		logger.Error("viewer error", zap.Error(err))
		os.Exit(1)
	}

	logger.Info("viewer closed normally")
}

// populate fills the viewer with a sample of every geometry kind: a grid
// network, a quad strip mesh, a box, and a scattering of spheres and tori.
func populate(v *viewer.Viewer) error {
	if err := v.Add(gridNetwork(6, 6, 1.5), viewer.WithName("grid")); err != nil {
		return err
	}
	if err := v.Add(waveMesh(12, 12, 0.5), viewer.WithName("wave"), viewer.WithoutVertices()); err != nil {
		return err
	}
	if err := v.Add(geom.NewBox(1, 1, 1), viewer.WithName("box"), viewer.WithoutVertices()); err != nil {
		return err
	}

	rng := rand.New(rand.NewSource(1))
	for i := 0; i < 8; i++ {
		center := mgl32.Vec3{
			rng.Float32()*16 - 8,
			rng.Float32()*16 - 8,
			rng.Float32() * 4,
		}
		var (
			data geom.Data
			name string
		)
		if i%2 == 0 {
			data = geom.NewSphere(center, 0.3+rng.Float32()*0.7)
			name = fmt.Sprintf("sphere-%d", i)
		} else {
			r := 0.5 + rng.Float32()
			data = geom.NewTorus(center, r, r*(0.2+rng.Float32()*0.3))
			name = fmt.Sprintf("torus-%d", i)
		}
		if err := v.Add(data, viewer.WithName(name), viewer.WithoutVertices()); err != nil {
			return err
		}
	}
	return nil
}

// gridNetwork builds an nx by ny grid of nodes connected along both axes.
func gridNetwork(nx, ny int, spacing float32) *geom.Network {
	n := geom.NewNetwork()
	ids := make([][]int, nx)
	for i := 0; i < nx; i++ {
		ids[i] = make([]int, ny)
		for j := 0; j < ny; j++ {
			x := (float32(i) - float32(nx-1)/2) * spacing
			y := (float32(j) - float32(ny-1)/2) * spacing
			ids[i][j] = n.AddNode(x, y, 0)
		}
	}
	for i := 0; i < nx; i++ {
		for j := 0; j < ny; j++ {
			if i+1 < nx {
				n.AddEdge(ids[i][j], ids[i+1][j])
			}
			if j+1 < ny {
				n.AddEdge(ids[i][j], ids[i][j+1])
			}
		}
	}
	return n
}

// waveMesh builds an nx by ny grid of quads with a gentle height field.
func waveMesh(nx, ny int, spacing float32) *geom.Mesh {
	m := geom.NewMesh()
	ids := make([][]int, nx+1)
	for i := 0; i <= nx; i++ {
		ids[i] = make([]int, ny+1)
		for j := 0; j <= ny; j++ {
			x := (float32(i) - float32(nx)/2) * spacing
			y := (float32(j) - float32(ny)/2) * spacing
			z := 0.2 * (x*x - y*y) / 4
			ids[i][j] = m.AddVertex(x, y, z)
		}
	}
	for i := 0; i < nx; i++ {
		for j := 0; j < ny; j++ {
			m.AddFace(ids[i][j], ids[i+1][j], ids[i+1][j+1], ids[i][j+1])
		}
	}
	return m
}
