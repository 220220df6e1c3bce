package scene

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl32"
)

// Attribute locations here must match positionLocation, normalLocation and
// texCoordLocation.
const vertexShaderSource = `
	#version 410 core
	layout (location = 0) in vec3 position;
	layout (location = 1) in vec3 normal;
	layout (location = 2) in vec2 texCoord;

	out vec3 vertexNormal;
	out vec3 vertexFragmentPos;
	out vec2 TexCoord;

	uniform mat4 model;
	uniform mat4 view;
	uniform mat4 projection;

	void main() {
		gl_Position = projection * view * model * vec4(position, 1.0);
		vertexFragmentPos = vec3(model * vec4(position, 1.0));
		vertexNormal = mat3(transpose(inverse(model))) * normal;
		TexCoord = texCoord;
	}
` + "\x00"

// The Phong result is only written when lit is set; by default the fragment
// is the raw texture sample.
const fragmentShaderSource = `
	#version 410 core
	in vec3 vertexNormal;
	in vec3 vertexFragmentPos;
	in vec2 TexCoord;

	out vec4 fragmentColor;

	uniform vec3 lightColor;
	uniform vec3 light2Color;
	uniform vec3 lightPos;
	uniform vec3 light2Pos;
	uniform vec3 viewPosition;
	uniform sampler2D ourTexture;
	uniform vec2 uvScale;
	uniform bool lit;

	void main() {
		float ambientStrength = 1.0;
		float ambient2Strength = 0.1;
		vec3 ambient = ambientStrength * lightColor;
		vec3 ambient2 = ambient2Strength * light2Color;

		vec3 norm = normalize(vertexNormal);
		vec3 lightDirection = normalize(lightPos - vertexFragmentPos);
		vec3 diffuse = max(dot(norm, lightDirection), 0.0) * lightColor;

		float specularIntensity = 0.8;
		float highlightSize = 16.0;
		vec3 viewDir = normalize(viewPosition - vertexFragmentPos);
		vec3 reflectDir = reflect(-lightDirection, norm);
		float specularComponent = pow(max(dot(viewDir, reflectDir), 0.0), highlightSize);
		vec3 specular = specularIntensity * specularComponent * lightColor;

		vec4 textureColor = texture(ourTexture, TexCoord * uvScale);
		// The fill light only contributes ambient.
		vec3 phong = (ambient + ambient2 + diffuse + specular) * textureColor.xyz;

		if (lit) {
			fragmentColor = vec4(phong, textureColor.a);
		} else {
			fragmentColor = texture(ourTexture, TexCoord);
		}
	}
` + "\x00"

// Light is a point light fixed for the session.
type Light struct {
	Position mgl32.Vec3
	Color    mgl32.Vec3
}

// uniforms holds the locations looked up once after linking.
type uniforms struct {
	model        int32
	view         int32
	projection   int32
	lightColor   int32
	light2Color  int32
	lightPos     int32
	light2Pos    int32
	viewPosition int32
	texture      int32
	uvScale      int32
	lit          int32
}

// Program is the linked scene shader and its uniform locations.
type Program struct {
	ID       uint32
	uniforms uniforms
}

// NewProgram compiles and links the scene shader. The error carries the
// driver's info log.
func NewProgram(dev Device) (*Program, error) {
	id, err := dev.CompileProgram(vertexShaderSource, fragmentShaderSource)
	if err != nil {
		return nil, fmt.Errorf("failed to compile shaders: %w", err)
	}

	loc := func(name string) int32 {
		return dev.UniformLocation(id, name)
	}
	return &Program{
		ID: id,
		uniforms: uniforms{
			model:        loc("model"),
			view:         loc("view"),
			projection:   loc("projection"),
			lightColor:   loc("lightColor"),
			light2Color:  loc("light2Color"),
			lightPos:     loc("lightPos"),
			light2Pos:    loc("light2Pos"),
			viewPosition: loc("viewPosition"),
			texture:      loc("ourTexture"),
			uvScale:      loc("uvScale"),
			lit:          loc("lit"),
		},
	}, nil
}

// frameUniforms is everything pushed to the program once per frame.
type frameUniforms struct {
	model, view, projection mgl32.Mat4
	viewPosition            mgl32.Vec3
	key, fill               Light
	lit                     bool
}

func (p *Program) apply(dev Device, f frameUniforms) {
	u := p.uniforms
	dev.UseProgram(p.ID)

	dev.UniformMatrix4(u.model, f.model)
	dev.UniformMatrix4(u.view, f.view)
	dev.UniformMatrix4(u.projection, f.projection)

	dev.UniformVec3(u.lightColor, f.key.Color)
	dev.UniformVec3(u.lightPos, f.key.Position)
	dev.UniformVec3(u.light2Color, f.fill.Color)
	dev.UniformVec3(u.light2Pos, f.fill.Position)
	dev.UniformVec3(u.viewPosition, f.viewPosition)

	dev.UniformInt(u.texture, 0)
	dev.UniformVec2(u.uvScale, mgl32.Vec2{1, 1})
	lit := int32(0)
	if f.lit {
		lit = 1
	}
	dev.UniformInt(u.lit, lit)
}

// Destroy deletes the program.
func (p *Program) Destroy(dev Device) {
	dev.DeleteProgram(p.ID)
}
