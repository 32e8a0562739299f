package gfx

const (
	ARRAY_BUFFER         = 0x8892
	COLOR_BUFFER_BIT     = 0x4000
	COMPILE_STATUS       = 0x8b81
	DEPTH_BUFFER_BIT     = 0x100
	DYNAMIC_DRAW         = 0x88e8
	ELEMENT_ARRAY_BUFFER = 0x8893
	FALSE                = 0
	FLOAT                = 0x1406
	FRAGMENT_SHADER      = 0x8b30
	INFO_LOG_LENGTH      = 0x8b84
	LINK_STATUS          = 0x8b82
	RENDERER             = 0x1f01
	STATIC_DRAW          = 0x88e4
	TRIANGLES            = 0x4
	TRUE                 = 1
	UNSIGNED_SHORT       = 0x1403
	VENDOR               = 0x1f00
	VERSION              = 0x1f02
	VERTEX_SHADER        = 0x8b31
)
