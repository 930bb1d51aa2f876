package renderer

// sceneVertexShader transforms unit-cube geometry and emits one clip
// distance per active clip plane. Only distances below uNumClipPlanes are
// written; the matching CLIP_DISTANCE enables are driven from the Go side.
const sceneVertexShader = `#version 410 core
layout(location = 0) in vec3 aPos;
layout(location = 1) in vec3 aNormal;

uniform mat4 uViewProj;
uniform mat4 uModel;
uniform vec4 uClipPlanes[6];
uniform int uNumClipPlanes;

out vec3 vNormal;
out float gl_ClipDistance[6];

void main() {
    vec4 world = uModel * vec4(aPos, 1.0);
    gl_Position = uViewProj * world;
    vNormal = mat3(uModel) * aNormal;
    for (int i = 0; i < uNumClipPlanes; i++) {
        gl_ClipDistance[i] = dot(world.xyz, uClipPlanes[i].xyz) + uClipPlanes[i].w;
    }
}
`

// sceneFragmentShader applies a fixed-direction lambert term. Wireframe
// geometry carries zero normals and is drawn unshaded.
const sceneFragmentShader = `#version 410 core
in vec3 vNormal;

uniform vec4 uColor;

out vec4 fragColor;

const vec3 lightDir = normalize(vec3(0.4, 0.8, 0.45));

void main() {
    float shade = 1.0;
    if (dot(vNormal, vNormal) > 0.0001) {
        vec3 n = normalize(vNormal);
        shade = 0.35 + 0.65 * max(dot(n, lightDir), 0.0);
    }
    fragColor = vec4(uColor.rgb * shade, uColor.a);
}
`
