// Package host implements the "external collaborator" spec §1 carves out of
// the core: window/renderer creation, pixel blitting, audio device setup,
// keyboard translation and wall-clock pacing. It is a thin, narrowly-scoped
// presentation layer around internal/machine; none of the hardware
// semantics live here.
//
// Grounded on the teacher's ui/ui.go and ui/utils.go (shader/texture setup,
// glfw main loop) and ui/audio.go (portaudio device), adapted to drive an
// internal/machine.Machine and its ARGB framebuffer instead of the
// teacher's nes.Console and image.RGBA frames.
package host

import (
	"fmt"
	"strings"

	"github.com/go-gl/gl/v3.3-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"
)

const (
	vertexShaderSrc = `
  #version 330

  attribute vec3 position;
  attribute vec2 uv;
  varying vec2 vuv;
  void main(void){
    gl_Position = vec4(position, 1.0);
    vuv = uv;
  }
  ` + "\x00"

	fragmentShaderSrc = `
  #version 330

  varying vec2 vuv;
  uniform sampler2D tex;
  void main(void){
    gl_FragColor = texture2D(tex, vuv);
  }
  ` + "\x00"
)

var quadPosition = []float32{1, 1, -1, 1, -1, -1, 1, -1}
var quadUV = []float32{1, 0, 0, 0, 0, 1, 1, 1}

// Init must be called once before any Window is created, and Terminate once
// the run loop ends. A failure here is exit code 1 (spec §6/§7 "host
// library init failure").
func Init() error {
	if err := glfw.Init(); err != nil {
		return fmt.Errorf("host: glfw init: %w", err)
	}
	glfw.WindowHint(glfw.ContextVersionMajor, 3)
	glfw.WindowHint(glfw.ContextVersionMinor, 3)
	return nil
}

func Terminate() { glfw.Terminate() }

// Window owns the glfw window, the compiled shader program and the texture
// the PPU's framebuffer is blitted into every presented frame.
type Window struct {
	win     *glfw.Window
	program uint32
	texture uint32
	rgba    []byte // scratch buffer reused every Present, width*height*4
}

// NewWindow creates and sizes a window (exit code 5 on failure), compiles
// the blit shader (exit code 6), and allocates the display texture (exit
// code 7) — matching the distinct exit codes spec §6 reserves for
// window/renderer/texture creation.
func NewWindow(title string, width, height, scale int) (*Window, error) {
	win, err := glfw.CreateWindow(width*scale, height*scale, title, nil, nil)
	if err != nil {
		return nil, fmt.Errorf("host: create window: %w", err)
	}
	win.MakeContextCurrent()
	if err := gl.Init(); err != nil {
		return nil, fmt.Errorf("host: init GL: %w", err)
	}
	program, err := newProgram()
	if err != nil {
		return nil, fmt.Errorf("host: link shader program: %w", err)
	}
	gl.UseProgram(program)

	var texID uint32
	gl.GenTextures(1, &texID)
	if texID == 0 {
		return nil, fmt.Errorf("host: create texture: glGenTextures returned no name")
	}
	gl.BindTexture(gl.TEXTURE_2D, texID)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.NEAREST)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.NEAREST)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, gl.CLAMP_TO_EDGE)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, gl.CLAMP_TO_EDGE)
	gl.BindTexture(gl.TEXTURE_2D, 0)

	return &Window{
		win:     win,
		program: program,
		texture: texID,
		rgba:    make([]byte, width*height*4),
	}, nil
}

func compileShader(src string, shaderType uint32) (uint32, error) {
	shader := gl.CreateShader(shaderType)
	csrc := gl.Str(src)
	gl.ShaderSource(shader, 1, &csrc, nil)
	gl.CompileShader(shader)
	var status int32
	gl.GetShaderiv(shader, gl.COMPILE_STATUS, &status)
	if status == gl.FALSE {
		var length int32
		gl.GetShaderiv(shader, gl.INFO_LOG_LENGTH, &length)
		logStr := strings.Repeat("\x00", int(length+1))
		gl.GetShaderInfoLog(shader, length, nil, gl.Str(logStr))
		return 0, fmt.Errorf("compile shader: %s", logStr)
	}
	return shader, nil
}

func newProgram() (uint32, error) {
	vs, err := compileShader(vertexShaderSrc, gl.VERTEX_SHADER)
	if err != nil {
		return 0, err
	}
	fs, err := compileShader(fragmentShaderSrc, gl.FRAGMENT_SHADER)
	if err != nil {
		return 0, err
	}
	program := gl.CreateProgram()
	gl.AttachShader(program, vs)
	gl.AttachShader(program, fs)
	gl.LinkProgram(program)
	var status int32
	gl.GetProgramiv(program, gl.LINK_STATUS, &status)
	if status == gl.FALSE {
		var length int32
		gl.GetProgramiv(program, gl.INFO_LOG_LENGTH, &length)
		logStr := strings.Repeat("\x00", int(length+1))
		gl.GetProgramInfoLog(program, length, nil, gl.Str(logStr))
		return 0, fmt.Errorf("link program: %s", logStr)
	}
	gl.DeleteShader(vs)
	gl.DeleteShader(fs)
	return program, nil
}

// Present uploads an ARGB8888 framebuffer (PPU's native format, spec §6
// "Video") as an RGBA texture and draws it to fill the window.
func (w *Window) Present(framebuffer []uint32, width, height int) {
	for i, px := range framebuffer {
		w.rgba[i*4+0] = byte(px >> 16) // R
		w.rgba[i*4+1] = byte(px >> 8)  // G
		w.rgba[i*4+2] = byte(px)       // B
		w.rgba[i*4+3] = byte(px >> 24) // A
	}
	gl.BindTexture(gl.TEXTURE_2D, w.texture)
	gl.TexImage2D(gl.TEXTURE_2D, 0, gl.RGBA, int32(width), int32(height), 0,
		gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(w.rgba))

	positionLoc := uint32(gl.GetAttribLocation(w.program, gl.Str("position\x00")))
	uvLoc := uint32(gl.GetAttribLocation(w.program, gl.Str("uv\x00")))
	texLoc := gl.GetUniformLocation(w.program, gl.Str("tex\x00"))
	gl.EnableVertexAttribArray(positionLoc)
	gl.EnableVertexAttribArray(uvLoc)
	gl.Uniform1i(texLoc, 0)
	gl.VertexAttribPointer(positionLoc, 2, gl.FLOAT, false, 0, gl.Ptr(quadPosition))
	gl.VertexAttribPointer(uvLoc, 2, gl.FLOAT, false, 0, gl.Ptr(quadUV))
	gl.DrawArrays(gl.TRIANGLE_FAN, 0, 4)

	w.win.SwapBuffers()
	glfw.PollEvents()
}

func (w *Window) ShouldClose() bool { return w.win.ShouldClose() }

// ReadKeys packs the default bindings (spec §6: keys A, S, O, P, arrows) into
// the key_state byte the controller gate expects.
func (w *Window) ReadKeys() byte {
	press := func(key glfw.Key) byte {
		if w.win.GetKey(key) == glfw.Press {
			return 1
		}
		return 0
	}
	var state byte
	state |= press(glfw.KeyA) << 0     // A
	state |= press(glfw.KeyS) << 1     // B
	state |= press(glfw.KeyO) << 2     // Select
	state |= press(glfw.KeyP) << 3     // Start
	state |= press(glfw.KeyUp) << 4    // Up
	state |= press(glfw.KeyDown) << 5  // Down
	state |= press(glfw.KeyLeft) << 6  // Left
	state |= press(glfw.KeyRight) << 7 // Right
	return state
}
