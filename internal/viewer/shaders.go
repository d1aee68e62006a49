package viewer

// The single shared shader pair. Vertex colors flow through unless
// is_selected is set, in which case the highlight color wins.
const vertexShaderSource = `
#version 330

layout(location = 0) in vec3 vertex;
layout(location = 1) in vec3 color;

uniform bool is_selected = false;
uniform float opacity = 1.0;

uniform mat4 P;
uniform mat4 V;
uniform mat4 M;
uniform mat4 O;

out vec4 vertex_color;

void main()
{
    gl_Position = P * V * M * O * vec4(vertex, 1.0);

    if (is_selected) {
        vertex_color = vec4(1.0, 1.0, 0.0, opacity);
    }
    else {
        vertex_color = vec4(color, opacity);
    }
}
`

const fragmentShaderSource = `
#version 330

in vec4 vertex_color;
out vec4 frag_color;

void main()
{
    frag_color = vertex_color;
}
`
