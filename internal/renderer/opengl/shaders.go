package opengl

// The vertex stage expands one packed face (x:4 z:4 y:9 dir:3 block:8) into
// a four vertex strip. Every face in a draw shares the direction uniform.
var voxelVertexSource = `#version 410 core
layout(location = 0) in uint face;

uniform mat4 m_PerspectiveView;
uniform vec3 chunkOrigin;
uniform vec3 viewPos;
uniform int direction;

out vec3 fragUV;
out float shade;
out float viewDist;

// backward, forward, left, right, down, up
const vec3 corners[24] = vec3[24](
	vec3(0,0,1), vec3(1,0,1), vec3(0,1,1), vec3(1,1,1),
	vec3(1,0,0), vec3(0,0,0), vec3(1,1,0), vec3(0,1,0),
	vec3(0,0,0), vec3(0,0,1), vec3(0,1,0), vec3(0,1,1),
	vec3(1,0,1), vec3(1,0,0), vec3(1,1,1), vec3(1,1,0),
	vec3(0,0,0), vec3(1,0,0), vec3(0,0,1), vec3(1,0,1),
	vec3(0,1,1), vec3(1,1,1), vec3(0,1,0), vec3(1,1,0)
);
const vec2 uvs[4] = vec2[4](vec2(0,1), vec2(1,1), vec2(0,0), vec2(1,0));
const float shades[6] = float[6](0.8, 0.7, 0.75, 0.85, 0.5, 1.0);

void main() {
	vec3 local = vec3(
		float(face & 15u),
		float((face >> 8) & 511u),
		float((face >> 4) & 15u)
	);
	uint block = (face >> 20) & 255u;

	vec3 world = chunkOrigin + local + corners[direction * 4 + gl_VertexID];
	gl_Position = m_PerspectiveView * vec4(world, 1.0);

	fragUV = vec3(uvs[gl_VertexID], float(block) - 1.0);
	shade = shades[direction];
	viewDist = distance(world, viewPos);
}
`

var voxelFragmentSource = `#version 410 core
in vec3 fragUV;
in float shade;
in float viewDist;

uniform sampler2DArray blockTextures;

out vec4 FragColor;

const vec3 skyColor = vec3(0.53, 0.75, 0.95);

void main() {
	vec4 texel = texture(blockTextures, fragUV);
	if (texel.a < 0.1) {
		discard;
	}
	float fog = clamp((viewDist - 96.0) / 160.0, 0.0, 1.0);
	FragColor = vec4(mix(texel.rgb * shade, skyColor, fog), texel.a);
}
`
