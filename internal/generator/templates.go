package generator

const rootTemplate = `cmake_minimum_required(VERSION {{ .MinVersion }})

set(CMAKE_EXPORT_COMPILE_COMMANDS ON)

include(${CMAKE_SOURCE_DIR}/cmake/user/keil2cmake_user.cmake)

project(${K2C_PROJECT_NAME} LANGUAGES C CXX ASM)

# K2C_COMPILER comes from the toolchain file or preset
message(STATUS "K2C compiler: ${K2C_COMPILER}")
message(STATUS "K2C optimize: ${K2C_OPTIMIZE_LEVEL}")
message(STATUS "K2C device:   ${K2C_DEVICE}")
message(STATUS "K2C cpu:      ${K2C_CPU_ARCH}")

if(NOT K2C_OPTIMIZE_LEVEL OR K2C_OPTIMIZE_LEVEL STREQUAL "")
    set(K2C_OPTIMIZE_LEVEL "${K2C_DEFAULT_OPTIMIZE_LEVEL}")
endif()

add_executable(${PROJECT_NAME}
    ${K2C_SOURCES}
)

target_include_directories(${PROJECT_NAME} PRIVATE
    ${K2C_INCLUDE_DIRS}
)

target_compile_definitions(${PROJECT_NAME} PRIVATE
    ${K2C_DEFINES}
)

# -O* must not reach the assembler: armasm rejects -O0.
set(_K2C_OPT_FLAG "")
if(K2C_COMPILER STREQUAL "armcc")
    if(K2C_OPTIMIZE_LEVEL STREQUAL "s")
        set(_K2C_OPT_FLAG "-Ospace")
    else()
        set(_K2C_OPT_FLAG "-O${K2C_OPTIMIZE_LEVEL}")
    endif()
elseif(K2C_COMPILER STREQUAL "armclang")
    if(K2C_OPTIMIZE_LEVEL STREQUAL "z")
        set(_K2C_OPT_FLAG "-Oz")
    else()
        set(_K2C_OPT_FLAG "-O${K2C_OPTIMIZE_LEVEL}")
    endif()
else()
    if(K2C_OPTIMIZE_LEVEL STREQUAL "s")
        set(_K2C_OPT_FLAG "-Os")
    else()
        set(_K2C_OPT_FLAG "-O${K2C_OPTIMIZE_LEVEL}")
    endif()
endif()

target_compile_options(${PROJECT_NAME} PRIVATE
    $<$<COMPILE_LANGUAGE:C>:${_K2C_OPT_FLAG}>
    $<$<COMPILE_LANGUAGE:CXX>:${_K2C_OPT_FLAG}>
)

# Keil misc controls only make sense for the Keil compilers
if(K2C_COMPILER STREQUAL "armcc" OR K2C_COMPILER STREQUAL "armclang")
    separate_arguments(_K2C_MISC_C NATIVE_COMMAND "${K2C_KEIL_MISC_C_FLAGS}")
    separate_arguments(_K2C_MISC_ASM NATIVE_COMMAND "${K2C_KEIL_MISC_ASM_FLAGS}")
    separate_arguments(_K2C_MISC_LD NATIVE_COMMAND "${K2C_KEIL_MISC_LD_FLAGS}")
    target_compile_options(${PROJECT_NAME} PRIVATE
        $<$<COMPILE_LANGUAGE:C>:${_K2C_MISC_C}>
        $<$<COMPILE_LANGUAGE:CXX>:${_K2C_MISC_C}>
        $<$<COMPILE_LANGUAGE:ASM>:${_K2C_MISC_ASM}>
    )
    target_link_options(${PROJECT_NAME} PRIVATE ${_K2C_MISC_LD})
endif()

# Linker options
if(K2C_COMPILER STREQUAL "armcc" OR K2C_COMPILER STREQUAL "armclang")
    if(K2C_LINKER_SCRIPT_SCT STREQUAL "")
        set(K2C_LINKER_SCRIPT_SCT "${CMAKE_SOURCE_DIR}/cmake/internal/keil2cmake_default.sct")
    elseif(NOT IS_ABSOLUTE "${K2C_LINKER_SCRIPT_SCT}")
        set(K2C_LINKER_SCRIPT_SCT "${CMAKE_SOURCE_DIR}/${K2C_LINKER_SCRIPT_SCT}")
    endif()
    target_link_options(${PROJECT_NAME} PRIVATE "--scatter=${K2C_LINKER_SCRIPT_SCT}")

    if(DEFINED CMAKE_FROMELF)
        add_custom_command(TARGET ${PROJECT_NAME} POST_BUILD
            COMMAND ${CMAKE_FROMELF} --i32combined --output="${CMAKE_CURRENT_BINARY_DIR}/${PROJECT_NAME}.hex" "$<TARGET_FILE:${PROJECT_NAME}>"
            COMMENT "Generating HEX file"
        )
        add_custom_command(TARGET ${PROJECT_NAME} POST_BUILD
            COMMAND ${CMAKE_FROMELF} --bin --output="${CMAKE_CURRENT_BINARY_DIR}/${PROJECT_NAME}.bin" "$<TARGET_FILE:${PROJECT_NAME}>"
            COMMENT "Generating BIN file"
        )
    endif()
elseif(K2C_COMPILER STREQUAL "armgcc")
    if(K2C_LINKER_SCRIPT_LD STREQUAL "")
        set(K2C_LINKER_SCRIPT_LD "${CMAKE_SOURCE_DIR}/cmake/internal/keil2cmake_default.ld")
    elseif(NOT IS_ABSOLUTE "${K2C_LINKER_SCRIPT_LD}")
        set(K2C_LINKER_SCRIPT_LD "${CMAKE_SOURCE_DIR}/${K2C_LINKER_SCRIPT_LD}")
    endif()
    target_link_options(${PROJECT_NAME} PRIVATE
        "-T${K2C_LINKER_SCRIPT_LD}"
        "-Wl,-Map=${CMAKE_CURRENT_BINARY_DIR}/${PROJECT_NAME}.map"
        "-Wl,--gc-sections"
    )

    if(DEFINED CMAKE_OBJCOPY)
        add_custom_command(TARGET ${PROJECT_NAME} POST_BUILD
            COMMAND ${CMAKE_OBJCOPY} -O ihex "$<TARGET_FILE:${PROJECT_NAME}>" "${CMAKE_CURRENT_BINARY_DIR}/${PROJECT_NAME}.hex"
            COMMENT "Generating HEX file"
        )
        add_custom_command(TARGET ${PROJECT_NAME} POST_BUILD
            COMMAND ${CMAKE_OBJCOPY} -O binary "$<TARGET_FILE:${PROJECT_NAME}>" "${CMAKE_CURRENT_BINARY_DIR}/${PROJECT_NAME}.bin"
            COMMENT "Generating BIN file"
        )
    endif()
endif()

add_custom_target(show-options
    COMMAND ${CMAKE_COMMAND} -E echo ""
    COMMAND ${CMAKE_COMMAND} -E echo "Keil2CMake Project Build Options"
    COMMAND ${CMAKE_COMMAND} -E echo ""
    COMMAND ${CMAKE_COMMAND} -E echo "Available CMake Presets:"
    COMMAND ${CMAKE_COMMAND} -E echo "  cmake --preset keil2cmake         (default compiler)"
{{- range .Compilers }}
    COMMAND ${CMAKE_COMMAND} -E echo "  cmake --preset keil2cmake-{{ . }}"
{{- end }}
    COMMAND ${CMAKE_COMMAND} -E echo ""
    COMMAND ${CMAKE_COMMAND} -E echo "Build Commands:"
    COMMAND ${CMAKE_COMMAND} -E echo "  cmake --build --preset keil2cmake"
    COMMAND ${CMAKE_COMMAND} -E echo ""
    COMMAND ${CMAKE_COMMAND} -E echo "Cache Variables (set via -D):"
    COMMAND ${CMAKE_COMMAND} -E echo "  K2C_COMPILER=<{{ join "|" .Compilers }}>"
    COMMAND ${CMAKE_COMMAND} -E echo "    Default: ${K2C_DEFAULT_COMPILER}"
    COMMAND ${CMAKE_COMMAND} -E echo "  K2C_OPTIMIZE_LEVEL=<{{ join "|" .OptimizeLevels }}>"
    COMMAND ${CMAKE_COMMAND} -E echo "    Default: ${K2C_DEFAULT_OPTIMIZE_LEVEL} (from Keil project)"
    COMMAND ${CMAKE_COMMAND} -E echo "    s=size(armcc/armgcc), z=size(armclang)"
    COMMAND ${CMAKE_COMMAND} -E echo "  K2C_LINKER_SCRIPT_SCT=<path>  scatter file for armcc/armclang"
    COMMAND ${CMAKE_COMMAND} -E echo "  K2C_LINKER_SCRIPT_LD=<path>   linker script for armgcc"
    COMMAND ${CMAKE_COMMAND} -E echo ""
    VERBATIM
)
`

const userTemplate = `{{ .T "gen.user.header.title" }}
{{ .T "gen.user.header.safe" }}
{{ .T "gen.user.header.no_overwrite" }}

set(K2C_PROJECT_NAME {{ quote .ProjectName }})
set(K2C_DEVICE {{ quote .Device }})
set(K2C_CPU_ARCH {{ quote .CPU }})

{{ .T "gen.user.defaults" }}
set(K2C_DEFAULT_COMPILER {{ quote .Compiler }})
set(K2C_DEFAULT_OPTIMIZE_LEVEL {{ quote .Optimize }})

{{ .T "gen.user.optimize" }}
set(K2C_OPTIMIZE_LEVEL "" CACHE STRING "Force optimize level (0/1/2/3/s/z). Empty = use Keil default")

{{ .T "gen.user.linker" }}
set(K2C_LINKER_SCRIPT_SCT {{ cmakeQuote .LinkerScriptSCT }} CACHE FILEPATH "Scatter file for armcc/armclang")
set(K2C_LINKER_SCRIPT_LD  {{ cmakeQuote .LinkerScriptLD }} CACHE FILEPATH "Linker script for armgcc")

set(K2C_SOURCES
    {{ cmakeList .Sources }}
)

set(K2C_INCLUDE_DIRS
    {{ cmakeList .IncludeDirs }}
)

set(K2C_DEFINES
    {{ join "\n    " .Defines }}
)

set(K2C_KEIL_MISC_C_FLAGS "{{ escapeQuotes .CFlags }}")
set(K2C_KEIL_MISC_ASM_FLAGS "{{ escapeQuotes .ASMFlags }}")
set(K2C_KEIL_MISC_LD_FLAGS "{{ escapeQuotes .LDFlags }}")
`

const toolchainTemplate = `{{ .T "gen.toolchain.header.title" }}
cmake_minimum_required(VERSION {{ .MinVersion }})

set(CMAKE_SYSTEM_NAME Generic)
set(CMAKE_SYSTEM_PROCESSOR {{ .CPUFlag }})
set(CMAKE_SYSTEM_ARCH {{ .Arch }})

{{ .T "gen.toolchain.select_compiler" }}
if(NOT DEFINED K2C_COMPILER OR K2C_COMPILER STREQUAL "")
    set(K2C_COMPILER {{ quote .Compiler }} CACHE STRING "armcc / armclang / armgcc")
endif()

if(CMAKE_HOST_WIN32)
    set(K2C_EXE ".exe")
else()
    set(K2C_EXE "")
endif()

set(K2C_ARMCC_BIN {{ cmakeQuote (binPrefix .ArmCCBin) }})
set(K2C_ARMCLANG_BIN {{ cmakeQuote (binPrefix .ArmClangBin) }})
set(K2C_ARMGCC_BIN {{ cmakeQuote (binPrefix .ArmGCCBin) }})
set(K2C_ARMGCC_SYSROOT {{ cmakeQuote .Sysroot }})

set(CMAKE_C_COMPILER_WORKS 1 CACHE INTERNAL "")
set(CMAKE_CXX_COMPILER_WORKS 1 CACHE INTERNAL "")
set(CMAKE_ASM_COMPILER_WORKS 1 CACHE INTERNAL "")
set(CMAKE_TRY_COMPILE_TARGET_TYPE STATIC_LIBRARY)

if(K2C_COMPILER STREQUAL "armcc")
    set(CMAKE_C_COMPILER "${K2C_ARMCC_BIN}armcc${K2C_EXE}")
    set(CMAKE_CXX_COMPILER "${K2C_ARMCC_BIN}armcc${K2C_EXE}")
    set(CMAKE_ASM_COMPILER "${K2C_ARMCC_BIN}armasm${K2C_EXE}")
    set(CMAKE_LINKER "${K2C_ARMCC_BIN}armlink${K2C_EXE}")
    set(CMAKE_AR "${K2C_ARMCC_BIN}armar${K2C_EXE}")
    set(CMAKE_FROMELF "${K2C_ARMCC_BIN}fromelf${K2C_EXE}")

    set(K2C_COMMON_FLAGS "--cpu={{ .CPU }} --apcs=interwork")
    set(CMAKE_C_FLAGS_INIT "${K2C_COMMON_FLAGS} --c99 --split_sections")
    set(CMAKE_CXX_FLAGS_INIT "${K2C_COMMON_FLAGS} --cpp --split_sections")
    set(CMAKE_ASM_FLAGS_INIT "${K2C_COMMON_FLAGS}")
    set(CMAKE_EXE_LINKER_FLAGS_INIT "--cpu={{ .CPU }} --map --info=summarysizes,sizes,totals,unused,veneers --entry=Reset_Handler --summary_stderr")
    set(CMAKE_C_LINK_EXECUTABLE "<CMAKE_LINKER> <CMAKE_C_LINK_FLAGS> <LINK_FLAGS> <OBJECTS> -o <TARGET> <LINK_LIBRARIES>")
    set(CMAKE_CXX_LINK_EXECUTABLE "<CMAKE_LINKER> <CMAKE_CXX_LINK_FLAGS> <LINK_FLAGS> <OBJECTS> -o <TARGET> <LINK_LIBRARIES>")
elseif(K2C_COMPILER STREQUAL "armclang")
    set(CMAKE_C_COMPILER "${K2C_ARMCLANG_BIN}armclang${K2C_EXE}")
    set(CMAKE_CXX_COMPILER "${K2C_ARMCLANG_BIN}armclang${K2C_EXE}")
    set(CMAKE_ASM_COMPILER "${K2C_ARMCLANG_BIN}armclang${K2C_EXE}")
    set(CMAKE_LINKER "${K2C_ARMCLANG_BIN}armlink${K2C_EXE}")
    set(CMAKE_AR "${K2C_ARMCLANG_BIN}armar${K2C_EXE}")
    set(CMAKE_FROMELF "${K2C_ARMCLANG_BIN}fromelf${K2C_EXE}")

    set(K2C_COMMON_FLAGS "--target=arm-arm-none-eabi -mcpu={{ .CPUFlag }} -mthumb")
    set(CMAKE_C_FLAGS_INIT "${K2C_COMMON_FLAGS} -ffunction-sections -fdata-sections")
    set(CMAKE_CXX_FLAGS_INIT "${K2C_COMMON_FLAGS} -ffunction-sections -fdata-sections")
    set(CMAKE_ASM_FLAGS_INIT "${K2C_COMMON_FLAGS} -masm=auto")
    set(CMAKE_EXE_LINKER_FLAGS_INIT "--cpu={{ .CPU }} --map --info=summarysizes,sizes,totals,unused,veneers --entry=Reset_Handler --summary_stderr")
    set(CMAKE_C_LINK_EXECUTABLE "<CMAKE_LINKER> <CMAKE_C_LINK_FLAGS> <LINK_FLAGS> <OBJECTS> -o <TARGET> <LINK_LIBRARIES>")
    set(CMAKE_CXX_LINK_EXECUTABLE "<CMAKE_LINKER> <CMAKE_CXX_LINK_FLAGS> <LINK_FLAGS> <OBJECTS> -o <TARGET> <LINK_LIBRARIES>")
elseif(K2C_COMPILER STREQUAL "armgcc")
    set(CMAKE_C_COMPILER "${K2C_ARMGCC_BIN}arm-none-eabi-gcc${K2C_EXE}")
    set(CMAKE_CXX_COMPILER "${K2C_ARMGCC_BIN}arm-none-eabi-g++${K2C_EXE}")
    set(CMAKE_ASM_COMPILER "${K2C_ARMGCC_BIN}arm-none-eabi-gcc${K2C_EXE}")
    set(CMAKE_AR "${K2C_ARMGCC_BIN}arm-none-eabi-ar${K2C_EXE}")
    set(CMAKE_OBJCOPY "${K2C_ARMGCC_BIN}arm-none-eabi-objcopy${K2C_EXE}")
    set(CMAKE_SIZE "${K2C_ARMGCC_BIN}arm-none-eabi-size${K2C_EXE}")

    set(K2C_COMMON_FLAGS "-mcpu={{ .CPUFlag }} -mthumb")
    if(NOT K2C_ARMGCC_SYSROOT STREQUAL "")
        set(CMAKE_SYSROOT "${K2C_ARMGCC_SYSROOT}")
        string(APPEND K2C_COMMON_FLAGS " --sysroot=${K2C_ARMGCC_SYSROOT}")
    endif()
    set(CMAKE_C_FLAGS_INIT "${K2C_COMMON_FLAGS} -ffunction-sections -fdata-sections")
    set(CMAKE_CXX_FLAGS_INIT "${K2C_COMMON_FLAGS} -ffunction-sections -fdata-sections -fno-exceptions -fno-rtti")
    set(CMAKE_ASM_FLAGS_INIT "${K2C_COMMON_FLAGS} -x assembler-with-cpp")
    set(CMAKE_EXE_LINKER_FLAGS_INIT "${K2C_COMMON_FLAGS} --specs=nano.specs --specs=nosys.specs")
else()
    message(FATAL_ERROR "Unsupported K2C_COMPILER: ${K2C_COMPILER} (expected armcc / armclang / armgcc)")
endif()

{{ .T "gen.toolchain.linker_scripts" }}
set(K2C_DEFAULT_LINKER_SCRIPT_SCT "${CMAKE_CURRENT_LIST_DIR}/keil2cmake_default.sct")
set(K2C_DEFAULT_LINKER_SCRIPT_LD "${CMAKE_CURRENT_LIST_DIR}/keil2cmake_default.ld")
`

const scatterTemplate = `; Default scatter file generated by keil2cmake for {{ .Device }}

LR_IROM1 0x08000000 0x00100000  {    ; load region size_region
  ER_IROM1 0x08000000 0x00100000  {  ; load address = execution address
   *.o (RESET, +First)
   *(InRoot$$Sections)
   .ANY (+RO)
   .ANY (+XO)
  }
  RW_IRAM1 0x20000000 0x00020000  {  ; RW data
   .ANY (+RW +ZI)
  }
}
`

const linkerTemplate = `/* Default linker script generated by keil2cmake for {{ .Device }} */

ENTRY(Reset_Handler)

_estack = ORIGIN(RAM) + LENGTH(RAM);
_Min_Heap_Size = 0x200;
_Min_Stack_Size = 0x400;

MEMORY
{
  FLASH (rx)  : ORIGIN = 0x08000000, LENGTH = 1024K
  RAM   (xrw) : ORIGIN = 0x20000000, LENGTH = 128K
}

SECTIONS
{
  .isr_vector :
  {
    . = ALIGN(4);
    KEEP(*(.isr_vector))
    KEEP(*(RESET))
    . = ALIGN(4);
  } >FLASH

  .text :
  {
    . = ALIGN(4);
    *(.text)
    *(.text*)
    *(.glue_7)
    *(.glue_7t)
    *(.eh_frame)
    KEEP(*(.init))
    KEEP(*(.fini))
    . = ALIGN(4);
    _etext = .;
  } >FLASH

  .rodata :
  {
    . = ALIGN(4);
    *(.rodata)
    *(.rodata*)
    . = ALIGN(4);
  } >FLASH

  .ARM.extab : { *(.ARM.extab* .gnu.linkonce.armextab.*) } >FLASH
  .ARM :
  {
    __exidx_start = .;
    *(.ARM.exidx*)
    __exidx_end = .;
  } >FLASH

  .preinit_array :
  {
    PROVIDE_HIDDEN(__preinit_array_start = .);
    KEEP(*(.preinit_array*))
    PROVIDE_HIDDEN(__preinit_array_end = .);
  } >FLASH

  .init_array :
  {
    PROVIDE_HIDDEN(__init_array_start = .);
    KEEP(*(SORT(.init_array.*)))
    KEEP(*(.init_array*))
    PROVIDE_HIDDEN(__init_array_end = .);
  } >FLASH

  .fini_array :
  {
    PROVIDE_HIDDEN(__fini_array_start = .);
    KEEP(*(SORT(.fini_array.*)))
    KEEP(*(.fini_array*))
    PROVIDE_HIDDEN(__fini_array_end = .);
  } >FLASH

  _sidata = LOADADDR(.data);

  .data :
  {
    . = ALIGN(4);
    _sdata = .;
    *(.data)
    *(.data*)
    . = ALIGN(4);
    _edata = .;
  } >RAM AT> FLASH

  .bss :
  {
    . = ALIGN(4);
    _sbss = .;
    __bss_start__ = _sbss;
    *(.bss)
    *(.bss*)
    *(COMMON)
    . = ALIGN(4);
    _ebss = .;
    __bss_end__ = _ebss;
  } >RAM

  ._user_heap_stack :
  {
    . = ALIGN(8);
    PROVIDE(end = .);
    PROVIDE(_end = .);
    . = . + _Min_Heap_Size;
    . = . + _Min_Stack_Size;
    . = ALIGN(8);
  } >RAM

  /DISCARD/ :
  {
    libc.a(*)
    libm.a(*)
    libgcc.a(*)
  }
}
`
