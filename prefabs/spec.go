package prefabs

import (
	"fmt"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/platformer/movement"
	"github.com/milk9111/platformer/physics"
	"gopkg.in/yaml.v3"
)

const (
	PlayerFile = "player.yaml"
	LevelFile  = "level.yaml"
)

const defaultKillY = -50

// LoadSpec decodes filename over a copy of defaults, so fields missing from
// the file keep their default values.
func LoadSpec[T any](filename string, defaults T) (T, error) {
	data, err := Load(filename)
	if err != nil {
		return defaults, fmt.Errorf("prefabs: load %s: %w", filename, err)
	}
	return ParseSpec(filename, data, defaults)
}

func ParseSpec[T any](filename string, data []byte, defaults T) (T, error) {
	spec := defaults
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return defaults, fmt.Errorf("prefabs: unmarshal %s: %w", filename, err)
	}
	return spec, nil
}

type VectorSpec struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
}

func (v VectorSpec) Vector() cp.Vector {
	return cp.Vector{X: v.X, Y: v.Y}
}

type BoxSpec struct {
	L float64 `yaml:"l"`
	B float64 `yaml:"b"`
	R float64 `yaml:"r"`
	T float64 `yaml:"t"`
}

func (b BoxSpec) BB() cp.BB {
	return cp.BB{L: b.L, B: b.B, R: b.R, T: b.T}
}

type GroundCheckSpec struct {
	Offset float64    `yaml:"offset"`
	Size   VectorSpec `yaml:"size"`
	Mask   []string   `yaml:"mask"`
}

type ColliderSpec struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
	Mass   float64 `yaml:"mass"`
}

type PlayerSpec struct {
	Name             string          `yaml:"name"`
	MaxSpeed         float64         `yaml:"max_speed"`
	AccelerationTime float64         `yaml:"acceleration_time"`
	DecelerationTime float64         `yaml:"deceleration_time"`
	ApexHeight       float64         `yaml:"apex_height"`
	ApexTime         float64         `yaml:"apex_time"`
	GroundCheck      GroundCheckSpec `yaml:"ground_check"`
	DashForce        float64         `yaml:"dash_force"`
	DashSpeed        float64         `yaml:"dash_speed"`
	DashDuration     float64         `yaml:"dash_duration"`
	DashCooldown     float64         `yaml:"dash_cooldown"`
	Collider         ColliderSpec    `yaml:"collider"`
}

// DefaultPlayerSpec mirrors movement.DefaultConfig with a unit collider.
func DefaultPlayerSpec() PlayerSpec {
	cfg := movement.DefaultConfig()
	return PlayerSpec{
		Name:             "player",
		MaxSpeed:         cfg.MaxSpeed,
		AccelerationTime: cfg.AccelerationTime,
		DecelerationTime: cfg.DecelerationTime,
		ApexHeight:       cfg.ApexHeight,
		ApexTime:         cfg.ApexTime,
		GroundCheck: GroundCheckSpec{
			Offset: cfg.GroundCheckOffset,
			Size:   VectorSpec{X: cfg.GroundCheckSize.X, Y: cfg.GroundCheckSize.Y},
			Mask:   []string{"ground"},
		},
		DashForce:    cfg.DashForce,
		DashSpeed:    cfg.DashSpeed,
		DashDuration: cfg.DashDuration,
		DashCooldown: cfg.DashCooldown,
		Collider:     ColliderSpec{Width: 1, Height: 1, Mass: 1},
	}
}

func LoadPlayerSpec() (*PlayerSpec, error) {
	spec, err := LoadSpec(PlayerFile, DefaultPlayerSpec())
	if err != nil {
		return nil, err
	}
	return &spec, nil
}

// MovementConfig converts the spec and validates the result.
func (s PlayerSpec) MovementConfig() (movement.Config, error) {
	mask, err := physics.ParseMask(s.GroundCheck.Mask)
	if err != nil {
		return movement.Config{}, fmt.Errorf("prefabs: %s ground_check.mask: %w", s.Name, err)
	}
	cfg := movement.Config{
		MaxSpeed:          s.MaxSpeed,
		AccelerationTime:  s.AccelerationTime,
		DecelerationTime:  s.DecelerationTime,
		ApexHeight:        s.ApexHeight,
		ApexTime:          s.ApexTime,
		GroundCheckOffset: s.GroundCheck.Offset,
		GroundCheckSize:   s.GroundCheck.Size.Vector(),
		GroundCheckMask:   mask,
		DashForce:         s.DashForce,
		DashSpeed:         s.DashSpeed,
		DashDuration:      s.DashDuration,
		DashCooldown:      s.DashCooldown,
	}
	if err := cfg.Validate(); err != nil {
		return movement.Config{}, fmt.Errorf("prefabs: %s: %w", s.Name, err)
	}
	return cfg, nil
}

type GroundSpec struct {
	BoxSpec `yaml:",inline"`
	Layer   string `yaml:"layer"`
}

type SpringboardSpec struct {
	BoxSpec `yaml:",inline"`
	Force   float64 `yaml:"force"`
}

type LevelSpec struct {
	Name         string            `yaml:"name"`
	Spawn        VectorSpec        `yaml:"spawn"`
	KillY        float64           `yaml:"kill_y"`
	Ground       []GroundSpec      `yaml:"ground"`
	Springboards []SpringboardSpec `yaml:"springboards"`
}

func LoadLevelSpec(filename string) (*LevelSpec, error) {
	if filename == "" {
		filename = LevelFile
	}
	spec, err := LoadSpec(filename, LevelSpec{KillY: defaultKillY})
	if err != nil {
		return nil, err
	}
	return &spec, nil
}

// Build adds the level geometry to w.
func (l *LevelSpec) Build(w *physics.World) error {
	for i, g := range l.Ground {
		layer := physics.LayerGround
		if g.Layer != "" {
			parsed, err := physics.ParseLayer(g.Layer)
			if err != nil {
				return fmt.Errorf("prefabs: %s ground[%d]: %w", l.Name, i, err)
			}
			layer = parsed
		}
		w.AddGround(g.BB(), layer)
	}
	for _, sb := range l.Springboards {
		w.AddSpringboard(sb.BB(), sb.Force)
	}
	return nil
}
