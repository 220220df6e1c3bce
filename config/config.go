package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Texture paths, relative to the working directory, in draw order.
const (
	TableTexture            = "../resources/textures/pinktable.png"
	CandleTexture           = "../resources/textures/candle.png"
	WickTexture             = "../resources/textures/wickflame.png"
	UpperCandlestickTexture = "../resources/textures/silver1.jpg"
	LowerCandlestickTexture = "../resources/textures/silver1.jpg"
	NapkinTexture           = "../resources/textures/napkin.png"
	KnifeTexture            = "../resources/textures/butterknife.jpg"
	KnifeTipTexture         = "../resources/textures/butterknife.jpg"
)

// Config holds everything the scene needs that is not a vertex literal.
type Config struct {
	Window     Window     `yaml:"window"`
	Camera     Camera     `yaml:"camera"`
	Projection Projection `yaml:"projection"`
	Lights     []Light    `yaml:"lights"`
	Textures   Textures   `yaml:"textures"`
	Shading    Shading    `yaml:"shading"`
}

// Window sets the GLFW window and the clear color.
type Window struct {
	Width      int        `yaml:"width"`
	Height     int        `yaml:"height"`
	Title      string     `yaml:"title"`
	ClearColor [4]float32 `yaml:"clear_color"`
	VSync      bool       `yaml:"vsync"`
}

// Camera sets the starting position and the fly camera rates.
type Camera struct {
	Position    [3]float32 `yaml:"position"`
	Speed       float32    `yaml:"speed"`
	Sensitivity float32    `yaml:"sensitivity"`
}

// Projection configures both projection matrices. Mode is the one active at
// startup: "perspective" or "orthographic".
type Projection struct {
	Mode        string  `yaml:"mode"`
	Near        float32 `yaml:"near"`
	Far         float32 `yaml:"far"`
	OrthoExtent float32 `yaml:"ortho_extent"`
}

// Light is a fixed point light. The first entry is the key light, the
// second the fill light.
type Light struct {
	Position [3]float32 `yaml:"position"`
	Color    [3]float32 `yaml:"color"`
}

// Textures holds one image path per draw item.
type Textures struct {
	Table            string `yaml:"table"`
	Candle           string `yaml:"candle"`
	Wick             string `yaml:"wick"`
	UpperCandlestick string `yaml:"upper_candlestick"`
	LowerCandlestick string `yaml:"lower_candlestick"`
	Napkin           string `yaml:"napkin"`
	Knife            string `yaml:"knife"`
	KnifeTip         string `yaml:"knife_tip"`
}

// Shading.Lit switches the fragment output from the raw texture color to the
// Phong result.
type Shading struct {
	Lit bool `yaml:"lit"`
}

// Default returns the built-in candle scene configuration.
func Default() *Config {
	return &Config{
		Window: Window{
			Width:      850,
			Height:     900,
			Title:      "Candle Scene",
			ClearColor: [4]float32{1.0, 0.0784314, 0.576471, 1.0}, // deep pink
			VSync:      true,
		},
		Camera: Camera{
			Position:    [3]float32{0, 0, 7},
			Speed:       2.5,
			Sensitivity: 0.1,
		},
		Projection: Projection{
			Mode:        "orthographic",
			Near:        0.1,
			Far:         100.0,
			OrthoExtent: 2.0,
		},
		Lights: []Light{
			{Position: [3]float32{-3.5, 2.0, 3.0}, Color: [3]float32{1.0, 0.2, 0.75}}, // key, pink
			{Position: [3]float32{4.0, 0.0, 1.0}, Color: [3]float32{1.0, 0.0, 0.0}},   // fill, red
		},
		Textures: Textures{
			Table:            TableTexture,
			Candle:           CandleTexture,
			Wick:             WickTexture,
			UpperCandlestick: UpperCandlestickTexture,
			LowerCandlestick: LowerCandlestickTexture,
			Napkin:           NapkinTexture,
			Knife:            KnifeTexture,
			KnifeTip:         KnifeTipTexture,
		},
	}
}

// Load reads a YAML file over the defaults. An empty path returns the defaults.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return cfg, nil
}

// Validate reports a setting the scene cannot run with.
func (c *Config) Validate() error {
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		return fmt.Errorf("window size must be positive, got %dx%d", c.Window.Width, c.Window.Height)
	}
	if c.Projection.Near <= 0 || c.Projection.Near >= c.Projection.Far {
		return fmt.Errorf("projection planes must satisfy 0 < near < far, got near=%v far=%v",
			c.Projection.Near, c.Projection.Far)
	}
	if c.Projection.OrthoExtent <= 0 {
		return errors.New("ortho_extent must be positive")
	}
	switch c.Projection.Mode {
	case "perspective", "orthographic":
	default:
		return fmt.Errorf("unknown projection mode %q", c.Projection.Mode)
	}
	if c.Camera.Speed <= 0 || c.Camera.Sensitivity <= 0 {
		return errors.New("camera speed and sensitivity must be positive")
	}
	if len(c.Lights) != 2 {
		return fmt.Errorf("scene uses exactly 2 lights, got %d", len(c.Lights))
	}
	for name, path := range c.Textures.byName() {
		if path == "" {
			return fmt.Errorf("texture path for %s is empty", name)
		}
	}
	return nil
}

func (t Textures) byName() map[string]string {
	return map[string]string{
		"table":             t.Table,
		"candle":            t.Candle,
		"wick":              t.Wick,
		"upper_candlestick": t.UpperCandlestick,
		"lower_candlestick": t.LowerCandlestick,
		"napkin":            t.Napkin,
		"knife":             t.Knife,
		"knife_tip":         t.KnifeTip,
	}
}
