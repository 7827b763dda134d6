package paths

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/jakoblorz/go-keil2cmake/internal/filesystem"
	"github.com/stretchr/testify/require"
)

func TestExpandPath(t *testing.T) {
	t.Setenv("K2C_TEST_ROOT", "/opt/keil")
	home, err := os.UserHomeDir()
	require.NoError(t, err)

	require.Equal(t, "", ExpandPath("   "))
	require.Equal(t, "/opt/keil/ARM/bin", ExpandPath("$K2C_TEST_ROOT/ARM/bin"))
	require.Equal(t, "/opt/keil/bin", ExpandPath(" ${K2C_TEST_ROOT}/bin "))
	require.Equal(t, "${K2C_TEST_UNSET_VAR}/bin", ExpandPath("$K2C_TEST_UNSET_VAR/bin"))
	require.Equal(t, home+"/gcc/bin", ExpandPath("~/gcc/bin"))
	require.Equal(t, "D:/Keil_v5/ARM/ARMCC/bin/", ExpandPath("D:/Keil_v5/ARM/ARMCC/bin/"))
}

func TestCMakeQuoting(t *testing.T) {
	require.Equal(t, `""`, CMakeQuote(""))
	require.Equal(t, `"Core/Src/main.c"`, CMakeQuote(`Core\Src\main.c`))
	require.Equal(t, `"a \"b\""`, CMakeQuote(`a "b"`))

	require.Equal(t, "\"a.c\"\n    \"b/c.s\"", FormatCMakeList([]string{"a.c", " ", `b\c.s`}))
	require.Equal(t, "", FormatCMakeList(nil))
	require.Equal(t, `--diag_suppress=\"1\"`, EscapeQuotes(`--diag_suppress="1"`))
}

func TestRelativize(t *testing.T) {
	projectDir := "/work/demo/MDK-ARM"
	root := "/work/demo"

	got := Relativize([]string{
		`..\Core\Src\main.c`,
		"../Core/startup.s",
		"",
		"startup_stm32f103xb.s",
		"/opt/lib/cmsis.c",
		"../Core/startup.s",
	}, projectDir, root)

	require.Equal(t, []string{
		"Core/Src/main.c",
		"Core/startup.s",
		"MDK-ARM/startup_stm32f103xb.s",
		"../../opt/lib/cmsis.c",
		"Core/startup.s",
	}, got)
}

func TestRelativize_DifferentDriveFallsBackToAbsolute(t *testing.T) {
	got := Relativize([]string{`D:\Libs\CMSIS\Include`, `C:\work\demo\Core`}, "C:/work/demo/MDK-ARM", "C:/work/demo")
	require.Equal(t, "D:/Libs/CMSIS/Include", got[0])
	require.Equal(t, "Core", got[1])

	got = Relativize([]string{`E:\x\y\..\z`}, "/work/demo", "/work/demo")
	require.Equal(t, []string{"E:/x/z"}, got)
}

func TestRelativize_RoundTrip(t *testing.T) {
	root := "/work/demo"
	for _, p := range []string{"Core/Src/main.c", "./Drivers/../Core/x.c", "../shared/lib.c"} {
		rel := Relativize([]string{p}, root, root)
		require.Len(t, rel, 1)
		require.Equal(t, Resolve(p, root), Resolve(rel[0], root))
	}
}

func TestOutputRoot(t *testing.T) {
	cwd := "/home/dev"

	require.Equal(t, "/work/demo", OutputRoot("", "/work/demo/MDK-ARM/qr.uvprojx", cwd))
	require.Equal(t, "/work/demo", OutputRoot(".", "/work/demo/mdk_arm/qr.uvprojx", cwd))
	require.Equal(t, "/work/demo/keil", OutputRoot("", "/work/demo/keil/qr.uvprojx", cwd))
	require.Equal(t, "/home/dev/proj", OutputRoot("", "proj/qr.uvprojx", cwd))
	require.Equal(t, "/home/dev/out", OutputRoot("out", "/work/demo/MDK-ARM/qr.uvprojx", cwd))
	require.Equal(t, "/tmp/out", OutputRoot("/tmp/out", "", cwd))
	require.Equal(t, "/home/dev", OutputRoot(".", "", cwd))
}

func TestInferSysroot(t *testing.T) {
	fs := filesystem.NewMockFileSystem()
	fs.AddDir("/opt/gcc/arm-none-eabi/include")
	fs.AddDir("/opt/gcc/bin")
	fs.AddFile("/opt/gcc/bin/arm-none-eabi-gcc", []byte("elf"))

	require.Equal(t, "/opt/gcc/arm-none-eabi", InferSysroot(fs, "/opt/gcc/bin"))
	require.Equal(t, "/opt/gcc/arm-none-eabi", InferSysroot(fs, "/opt/gcc/bin/arm-none-eabi-gcc"))
	require.Equal(t, "/opt/gcc/arm-none-eabi", InferSysroot(fs, "/opt/gcc"))
	require.Equal(t, "", InferSysroot(fs, "/opt/other/bin"))
	require.Equal(t, "", InferSysroot(fs, ""))
}

func TestInferGCCIncludes(t *testing.T) {
	fs := filesystem.NewMockFileSystem()
	base := filepath.Join("/opt/gcc", "lib", "gcc", "arm-none-eabi", "13.2.1")
	fs.AddDir(filepath.Join(base, "include"))
	fs.AddDir(filepath.Join(base, "include-fixed"))
	fs.AddDir("/opt/gcc/bin")

	require.Equal(t, []string{
		"/opt/gcc/lib/gcc/arm-none-eabi/13.2.1/include",
		"/opt/gcc/lib/gcc/arm-none-eabi/13.2.1/include-fixed",
	}, InferGCCIncludes(fs, "/opt/gcc/bin/"))
	require.Empty(t, InferGCCIncludes(fs, "/nowhere/bin"))
}
