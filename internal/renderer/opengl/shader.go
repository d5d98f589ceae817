package opengl

import (
	"fmt"
	"strings"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/mathgl/mgl32"
	"go.uber.org/zap"

	"GopherCraft/internal/logger"
)

// Program is a linked GL program with a uniform location cache.
type Program struct {
	id        uint32
	locations map[string]int32
}

// NewVoxelProgram compiles the chunk face shader.
func NewVoxelProgram() (*Program, error) {
	return NewProgram(voxelVertexSource, voxelFragmentSource)
}

func NewProgram(vertexSource, fragmentSource string) (*Program, error) {
	vs, err := compileShader(vertexSource, gl.VERTEX_SHADER)
	if err != nil {
		return nil, err
	}
	fs, err := compileShader(fragmentSource, gl.FRAGMENT_SHADER)
	if err != nil {
		gl.DeleteShader(vs)
		return nil, err
	}
	id, err := linkProgram(vs, fs)
	if err != nil {
		return nil, err
	}
	logger.Log.Info("Shader program linked", zap.Uint32("program", id))
	return &Program{id: id, locations: make(map[string]int32)}, nil
}

func compileShader(source string, shaderType uint32) (uint32, error) {
	shader := gl.CreateShader(shaderType)
	cSources, free := gl.Strs(source + "\x00")
	gl.ShaderSource(shader, 1, cSources, nil)
	free()
	gl.CompileShader(shader)

	var status int32
	gl.GetShaderiv(shader, gl.COMPILE_STATUS, &status)
	if status == gl.FALSE {
		var logLength int32
		gl.GetShaderiv(shader, gl.INFO_LOG_LENGTH, &logLength)
		log := strings.Repeat("\x00", int(logLength+1))
		gl.GetShaderInfoLog(shader, logLength, nil, gl.Str(log))
		gl.DeleteShader(shader)
		return 0, fmt.Errorf("opengl: compile %s shader: %s", shaderName(shaderType), strings.TrimRight(log, "\x00"))
	}
	return shader, nil
}

func linkProgram(vertexShader, fragmentShader uint32) (uint32, error) {
	program := gl.CreateProgram()
	gl.AttachShader(program, vertexShader)
	gl.AttachShader(program, fragmentShader)
	gl.LinkProgram(program)

	gl.DetachShader(program, vertexShader)
	gl.DeleteShader(vertexShader)
	gl.DetachShader(program, fragmentShader)
	gl.DeleteShader(fragmentShader)

	var status int32
	gl.GetProgramiv(program, gl.LINK_STATUS, &status)
	if status == gl.FALSE {
		var logLength int32
		gl.GetProgramiv(program, gl.INFO_LOG_LENGTH, &logLength)
		log := strings.Repeat("\x00", int(logLength+1))
		gl.GetProgramInfoLog(program, logLength, nil, gl.Str(log))
		gl.DeleteProgram(program)
		return 0, fmt.Errorf("opengl: link program: %s", strings.TrimRight(log, "\x00"))
	}
	return program, nil
}

func shaderName(shaderType uint32) string {
	if shaderType == gl.FRAGMENT_SHADER {
		return "fragment"
	}
	return "vertex"
}

func (p *Program) Use() {
	gl.UseProgram(p.id)
}

// location returns the cached uniform location, -1 when the uniform was
// optimised out.
func (p *Program) location(name string) int32 {
	if loc, ok := p.locations[name]; ok {
		return loc
	}
	loc := gl.GetUniformLocation(p.id, gl.Str(name+"\x00"))
	p.locations[name] = loc
	return loc
}

func (p *Program) SetMat4(name string, m mgl32.Mat4) {
	if loc := p.location(name); loc != -1 {
		gl.UniformMatrix4fv(loc, 1, false, &m[0])
	}
}

func (p *Program) SetVec3(name string, v mgl32.Vec3) {
	if loc := p.location(name); loc != -1 {
		gl.Uniform3f(loc, v[0], v[1], v[2])
	}
}

func (p *Program) SetInt(name string, v int32) {
	if loc := p.location(name); loc != -1 {
		gl.Uniform1i(loc, v)
	}
}

func (p *Program) Delete() {
	gl.DeleteProgram(p.id)
	p.locations = make(map[string]int32)
}
