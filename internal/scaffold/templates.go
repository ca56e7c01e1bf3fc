package scaffold

// CMakeListsTemplate renders CMakeLists.txt from a cmakeContext.
const CMakeListsTemplate = `cmake_minimum_required(VERSION 3.19)
project({{.Name}} CXX)

set(CMAKE_CXX_STANDARD {{.Std}})
set(CMAKE_CXX_STANDARD_REQUIRED ON)
set(CMAKE_EXPORT_COMPILE_COMMANDS ON)

# Vcpkg integration
{{- if .Ports}}
{{- range .Ports}}
find_package({{.}} CONFIG REQUIRED)
{{- end}}
{{- else}}
# No dependencies specified
{{- end}}

add_executable({{.Name}} {{.MainFile}})
{{if .Ports}}
target_link_libraries({{.Name}} PRIVATE {{linkLine .Ports}})
{{else}}
# No dependencies to link
{{end -}}
`

// PresetsTemplate is CMakePresets.json. It is shared and versioned, so it
// only refers to vcpkg through the VCPKG_ROOT environment variable.
const PresetsTemplate = `{
    "version": 3,
    "configurePresets": [
        {
            "name": "vcpkg-base",
            "hidden": true,
            "generator": "Ninja",
            "binaryDir": "${sourceDir}/build/${presetName}",
            "installDir": "${sourceDir}/install/${presetName}",
            "cacheVariables": {
                "CMAKE_TOOLCHAIN_FILE": "$env{VCPKG_ROOT}/scripts/buildsystems/vcpkg.cmake",
                "CMAKE_EXPORT_COMPILE_COMMANDS": "ON"
            }
        },
        {
            "name": "debug",
            "displayName": "Debug Build",
            "inherits": "vcpkg-base",
            "cacheVariables": { "CMAKE_BUILD_TYPE": "Debug" }
        },
        {
            "name": "release",
            "displayName": "Release Build",
            "inherits": "vcpkg-base",
            "cacheVariables": { "CMAKE_BUILD_TYPE": "Release" }
        }
    ],
    "buildPresets": [
        { "name": "debug", "configurePreset": "debug" },
        { "name": "release", "configurePreset": "release" }
    ],
    "testPresets": [
        { "name": "debug", "configurePreset": "debug", "output": { "outputOnFailure": true }, "execution": { "noTestsAction": "error", "stopOnFailure": true } },
        { "name": "release", "configurePreset": "release", "output": { "outputOnFailure": true }, "execution": { "noTestsAction": "error", "stopOnFailure": true } }
    ]
}
`

// UserPresetsTemplate is CMakeUserPresets.json: the machine-local "dev"
// preset with absolute paths. It is listed in the generated .gitignore.
const UserPresetsTemplate = `{
    "version": 3,
    "configurePresets": [
        {
            "name": "dev",
            "displayName": "Developer Default (Debug)",
            "inherits": "debug",
            "environment": {
                "VCPKG_ROOT": {{json .VcpkgRoot}},
                "CMAKE_MAKE_PROGRAM": {{json .MakeProgram}},
                "CMAKE_C_COMPILER": {{json .CCompiler}},
                "CMAKE_CXX_COMPILER": {{json .CXXCompiler}}
            },
            "cacheVariables": {
                "CMAKE_TOOLCHAIN_FILE": {{json .Toolchain}}
            }
        }
    ],
    "buildPresets": [ { "name": "dev", "configurePreset": "dev" } ],
    "testPresets": [ { "name": "dev", "configurePreset": "dev" } ]
}
`

// MainSourceTemplate is the entry point, main.cc.
const MainSourceTemplate = `#include <iostream>

// If you added "fmt" as a dependency, uncomment the line below
// and the fmt::print line in main():
// #include <fmt/core.h>

int main(int argc, char* argv[]) {
    // fmt::print("Hello from {}!\n", "{{.Name}}");
    std::cout << "Hello from {{.Name}}!" << std::endl;
    if (argc > 1) {
        std::cout << "Provided arguments:" << std::endl;
        for (int i = 1; i < argc; ++i) {
            std::cout << i << ": " << argv[i] << std::endl;
        }
    }
    return 0;
}
`

// GitIgnoreTemplate is the fixed .gitignore content.
const GitIgnoreTemplate = `# CMake
build/
install/
CMakeUserPresets.json
CMakeCache.txt
CMakeFiles/
cmake_install.cmake
compile_commands.json

# vcpkg
vcpkg_installed/

# IDE specific
.vscode/
.idea/
.cache/
*.suo
*.ntvs*
*.njsproj
*.sln.docstates

# Compiled Object files & Precompiled Headers
*.slo
*.lo
*.o
*.obj
*.gch
*.pch

# Compiled Libraries & Executables
*.so
*.dylib
*.dll
*.lai
*.la
*.a
*.lib
*.exe
*.out
*.app
`
