package i18n

var zhMessages = map[string]string{
	// CLI
	"cli.error.project_required":      "必须提供 .uvprojx 文件路径",
	"cli.error.clean_requires_target": "使用 --clean 时必须提供 .uvprojx 或通过 -o 指定要清理的输出目录",
	"cli.error.file_not_found":        "错误: 文件不存在 - %s",
	"cli.error.invalid_compiler":      "错误: 不支持的编译器 '%s'，可选: armcc / armclang / armgcc",
	"cli.error.invalid_optimize":      "错误: 不支持的优化等级 '%s'，可选: 0/1/2/3/s/z",
	"cli.error.parse_failed":          "解析失败: %s",
	"cli.show_config.toolchains":      "当前工具链配置:",
	"cli.show_config.includes":        "当前头文件路径配置:",
	"cli.show_config.ninja":           "Ninja 配置:",
	"cli.show_config.cmake":           "CMake配置:",
	"cli.show_config.general":         "通用配置:",
	"cli.show_config.path":            "配置文件: %s",
	"cli.done":                        "✓ 成功生成 CMake 工程配置",
	"cli.summary.project":             "项目",
	"cli.summary.device":              "设备",
	"cli.summary.cpu":                 "CPU",
	"cli.summary.compiler":            "编译器",
	"cli.summary.optimize":            "优化等级",
	"cli.summary.output":              "输出目录",
	"cli.summary.written":             "已写入 %s",
	"cli.summary.kept":                "已保留 %s (用户文件, 不覆盖)",
	"cli.build_cmds":                  "✓ 构建命令:",
	"cli.build_cmds.explicit":         "# 或显式指定:",
	// Keil parsing
	"uvprojx.get_target":      "读取目标信息...",
	"uvprojx.collect_sources": "收集源文件...",
	"uvprojx.set_includes":    "读取头文件路径...",
	"uvprojx.load_defines":    "读取宏定义...",
	"uvprojx.scatter":         "读取 scatter/linker 脚本...",
	"uvprojx.device":          "读取芯片信息...",
	"uvprojx.compiler":        "读取编译器类型...",
	"uvprojx.compiler.value":  "  uAC6 = %s",
	"uvprojx.compiler.absent": "  未找到 uAC6 节点, 默认使用 ARMCC",
	"uvprojx.flags":           "读取编译/汇编/链接选项...",
	"uvprojx.optimize":        "读取优化等级...",
	"uvprojx.optimize.value":  "  Keil Optim = %s",
	"uvprojx.optimize.absent": "  未找到 Optim 节点, 默认为 0",
	// Cleaning
	"clean.done": "✓ 清理完成: 已移除 %d 个 keil2cmake 生成文件",
	"clean.none": "✓ 清理完成: 未发现可移除的 keil2cmake 生成文件",
	// Config
	"config.updated":             "已更新配置: %s = %s",
	"config.error.format":        "错误: 编辑格式应为 KEY=VALUE, 但得到的是: %s",
	"config.error.invalid_key":   "错误: 无效的配置键 '%s'。有效的键: %s",
	"config.error.invalid_value": "错误: 配置键 '%s' 的值无效: %s",
	// Generated CMake comments
	"gen.user.header.title":         "# Keil2Cmake 生成的用户配置文件",
	"gen.user.header.safe":          "# 可安全编辑: 源文件/头文件/宏/flags。",
	"gen.user.header.no_overwrite":  "# 重新运行生成器时，若文件已存在将不会覆盖。",
	"gen.user.defaults":             "# Keil 工程默认设置",
	"gen.user.optimize":             "# 覆盖优化等级: 0/1/2/3/s/z。留空 = 使用 Keil 默认值",
	"gen.user.linker":               "# 可选的链接器脚本覆盖。留空时，使用 cmake/internal 下的默认值。",
	"gen.toolchain.header.title":    "# Keil2Cmake 自动生成的工具链文件",
	"gen.toolchain.select_compiler": "# 选择编译器（通常由 CMakePresets.json 提供）",
	"gen.toolchain.linker_scripts":  "# 默认链接器脚本位于 cmake/internal（可通过 K2C_LINKER_SCRIPT_* 覆盖）",
	"gen.clangd.header.title":       "# Keil2Cmake 为 clangd 生成的配置",
	"gen.clangd.header.compiler":    "# 系统头文件路径根据编译器 %s 选择",
}

var enMessages = map[string]string{
	// CLI
	"cli.error.project_required":      "A .uvprojx path is required",
	"cli.error.clean_requires_target": "With --clean you must provide a .uvprojx or specify -o for the output root to clean",
	"cli.error.file_not_found":        "Error: file does not exist - %s",
	"cli.error.invalid_compiler":      "Error: unsupported compiler '%s', expected armcc / armclang / armgcc",
	"cli.error.invalid_optimize":      "Error: unsupported optimization level '%s', expected 0/1/2/3/s/z",
	"cli.error.parse_failed":          "Failed to parse project: %s",
	"cli.show_config.toolchains":      "Toolchain configuration:",
	"cli.show_config.includes":        "Include paths configuration:",
	"cli.show_config.ninja":           "Ninja configuration:",
	"cli.show_config.cmake":           "CMake configuration:",
	"cli.show_config.general":         "General configuration:",
	"cli.show_config.path":            "Config file: %s",
	"cli.done":                        "✓ CMake project generated successfully",
	"cli.summary.project":             "Project",
	"cli.summary.device":              "Device",
	"cli.summary.cpu":                 "CPU",
	"cli.summary.compiler":            "Compiler",
	"cli.summary.optimize":            "Optimization",
	"cli.summary.output":              "Output",
	"cli.summary.written":             "wrote %s",
	"cli.summary.kept":                "kept %s (user file, not overwritten)",
	"cli.build_cmds":                  "✓ Build commands:",
	"cli.build_cmds.explicit":         "# or explicitly:",
	// Keil parsing
	"uvprojx.get_target":      "Reading target info...",
	"uvprojx.collect_sources": "Collecting source files...",
	"uvprojx.set_includes":    "Reading include paths...",
	"uvprojx.load_defines":    "Reading preprocessor defines...",
	"uvprojx.scatter":         "Reading scatter/linker settings...",
	"uvprojx.device":          "Reading device info...",
	"uvprojx.compiler":        "Detecting compiler...",
	"uvprojx.compiler.value":  "  uAC6 = %s",
	"uvprojx.compiler.absent": "  uAC6 node not found, defaulting to ARMCC",
	"uvprojx.flags":           "Reading C/ASM/LD flags...",
	"uvprojx.optimize":        "Reading optimization level...",
	"uvprojx.optimize.value":  "  Keil Optim = %s",
	"uvprojx.optimize.absent": "  Optim not found, defaulting to 0",
	// Cleaning
	"clean.done": "✓ Clean complete: removed %d keil2cmake generated files",
	"clean.none": "✓ Clean complete: no keil2cmake generated files found",
	// Config
	"config.updated":             "Updated: %s = %s",
	"config.error.format":        "Error: edit format must be KEY=VALUE, got: %s",
	"config.error.invalid_key":   "Error: invalid key '%s'. Valid keys: %s",
	"config.error.invalid_value": "Error: invalid value for '%s': %s",
	// Generated CMake comments
	"gen.user.header.title":         "# Generated user configuration for Keil2Cmake",
	"gen.user.header.safe":          "# Safe to edit: sources/includes/defines/flags.",
	"gen.user.header.no_overwrite":  "# If you re-run the generator, this file is NOT overwritten if it already exists.",
	"gen.user.defaults":             "# Defaults from Keil project",
	"gen.user.optimize":             "# Override optimize level: 0/1/2/3/s/z. Empty = use Keil default.",
	"gen.user.linker":               "# Optional linker overrides. If empty, the defaults under cmake/internal are used.",
	"gen.toolchain.header.title":    "# Auto-generated toolchain by Keil2Cmake",
	"gen.toolchain.select_compiler": "# Select compiler (usually provided by CMakePresets.json)",
	"gen.toolchain.linker_scripts":  "# Default linker scripts live in cmake/internal (can be overridden via K2C_LINKER_SCRIPT_*)",
	"gen.clangd.header.title":       "# clangd configuration generated by Keil2Cmake",
	"gen.clangd.header.compiler":    "# System include paths follow the %s compiler",
}
