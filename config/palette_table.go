package config

import "image/color"

// waterColorPalette is the visual water colour ramp, evenly spread over
// [PaletteMin, PaletteMax] nanometres.
var waterColorPalette = [...]color.RGBA{
	{0x21, 0x58, 0xbc, 0xff}, // #2158bc
	{0x21, 0x58, 0xbc, 0xff}, // #2158bc
	{0x21, 0x58, 0xbc, 0xff}, // #2158bc
	{0x21, 0x58, 0xbc, 0xff}, // #2158bc
	{0x21, 0x58, 0xbc, 0xff}, // #2158bc
	{0x31, 0x6d, 0xc5, 0xff}, // #316dc5
	{0x31, 0x6d, 0xc5, 0xff}, // #316dc5
	{0x31, 0x6d, 0xc5, 0xff}, // #316dc5
	{0x31, 0x6d, 0xc5, 0xff}, // #316dc5
	{0x31, 0x6d, 0xc5, 0xff}, // #316dc5
	{0x32, 0x7c, 0xbb, 0xff}, // #327cbb
	{0x32, 0x7c, 0xbb, 0xff}, // #327cbb
	{0x32, 0x7c, 0xbb, 0xff}, // #327cbb
	{0x32, 0x7c, 0xbb, 0xff}, // #327cbb
	{0x32, 0x7c, 0xbb, 0xff}, // #327cbb
	{0x4b, 0x80, 0xa0, 0xff}, // #4b80a0
	{0x4b, 0x80, 0xa0, 0xff}, // #4b80a0
	{0x4b, 0x80, 0xa0, 0xff}, // #4b80a0
	{0x4b, 0x80, 0xa0, 0xff}, // #4b80a0
	{0x56, 0x8f, 0x96, 0xff}, // #568f96
	{0x56, 0x8f, 0x96, 0xff}, // #568f96
	{0x56, 0x8f, 0x96, 0xff}, // #568f96
	{0x56, 0x8f, 0x96, 0xff}, // #568f96
	{0x56, 0x8f, 0x96, 0xff}, // #568f96
	{0x56, 0x8f, 0x96, 0xff}, // #568f96
	{0x6d, 0x92, 0x98, 0xff}, // #6d9298
	{0x6d, 0x92, 0x98, 0xff}, // #6d9298
	{0x6d, 0x92, 0x98, 0xff}, // #6d9298
	{0x6d, 0x92, 0x98, 0xff}, // #6d9298
	{0x6d, 0x92, 0x98, 0xff}, // #6d9298
	{0x6d, 0x92, 0x98, 0xff}, // #6d9298
	{0x6d, 0x92, 0x98, 0xff}, // #6d9298
	{0x6d, 0x92, 0x98, 0xff}, // #6d9298
	{0x6d, 0x92, 0x98, 0xff}, // #6d9298
	{0x6d, 0x92, 0x98, 0xff}, // #6d9298
	{0x6d, 0x92, 0x98, 0xff}, // #6d9298
	{0x6d, 0x92, 0x98, 0xff}, // #6d9298
	{0x6d, 0x92, 0x98, 0xff}, // #6d9298
	{0x6d, 0x92, 0x98, 0xff}, // #6d9298
	{0x69, 0x8c, 0x86, 0xff}, // #698c86
	{0x69, 0x8c, 0x86, 0xff}, // #698c86
	{0x69, 0x8c, 0x86, 0xff}, // #698c86
	{0x69, 0x8c, 0x86, 0xff}, // #698c86
	{0x69, 0x8c, 0x86, 0xff}, // #698c86
	{0x69, 0x8c, 0x86, 0xff}, // #698c86
	{0x69, 0x8c, 0x86, 0xff}, // #698c86
	{0x69, 0x8c, 0x86, 0xff}, // #698c86
	{0x69, 0x8c, 0x86, 0xff}, // #698c86
	{0x69, 0x8c, 0x86, 0xff}, // #698c86
	{0x69, 0x8c, 0x86, 0xff}, // #698c86
	{0x69, 0x8c, 0x86, 0xff}, // #698c86
	{0x69, 0x8c, 0x86, 0xff}, // #698c86
	{0x69, 0x8c, 0x86, 0xff}, // #698c86
	{0x69, 0x8c, 0x86, 0xff}, // #698c86
	{0x69, 0x8c, 0x86, 0xff}, // #698c86
	{0x69, 0x8c, 0x86, 0xff}, // #698c86
	{0x69, 0x8c, 0x86, 0xff}, // #698c86
	{0x69, 0x8c, 0x86, 0xff}, // #698c86
	{0x69, 0x8c, 0x86, 0xff}, // #698c86
	{0x69, 0x8c, 0x86, 0xff}, // #698c86
	{0x75, 0x9e, 0x72, 0xff}, // #759e72
	{0x75, 0x9e, 0x72, 0xff}, // #759e72
	{0x75, 0x9e, 0x72, 0xff}, // #759e72
	{0x75, 0x9e, 0x72, 0xff}, // #759e72
	{0x75, 0x9e, 0x72, 0xff}, // #759e72
	{0x75, 0x9e, 0x72, 0xff}, // #759e72
	{0x75, 0x9e, 0x72, 0xff}, // #759e72
	{0x75, 0x9e, 0x72, 0xff}, // #759e72
	{0x75, 0x9e, 0x72, 0xff}, // #759e72
	{0x75, 0x9e, 0x72, 0xff}, // #759e72
	{0x75, 0x9e, 0x72, 0xff}, // #759e72
	{0x75, 0x9e, 0x72, 0xff}, // #759e72
	{0x75, 0x9e, 0x72, 0xff}, // #759e72
	{0x75, 0x9e, 0x72, 0xff}, // #759e72
	{0x75, 0x9e, 0x72, 0xff}, // #759e72
	{0x75, 0x9e, 0x72, 0xff}, // #759e72
	{0x75, 0x9e, 0x72, 0xff}, // #759e72
	{0x75, 0x9e, 0x72, 0xff}, // #759e72
	{0x75, 0x9e, 0x72, 0xff}, // #759e72
	{0x7b, 0xa6, 0x54, 0xff}, // #7ba654
	{0x7b, 0xa6, 0x54, 0xff}, // #7ba654
	{0x7b, 0xa6, 0x54, 0xff}, // #7ba654
	{0x7b, 0xa6, 0x54, 0xff}, // #7ba654
	{0x7b, 0xa6, 0x54, 0xff}, // #7ba654
	{0x7b, 0xa6, 0x54, 0xff}, // #7ba654
	{0x7b, 0xa6, 0x54, 0xff}, // #7ba654
	{0x7b, 0xa6, 0x54, 0xff}, // #7ba654
	{0x7b, 0xa6, 0x54, 0xff}, // #7ba654
	{0x7b, 0xa6, 0x54, 0xff}, // #7ba654
	{0x7d, 0xae, 0x38, 0xff}, // #7dae38
	{0x7d, 0xae, 0x38, 0xff}, // #7dae38
	{0x7d, 0xae, 0x38, 0xff}, // #7dae38
	{0x7d, 0xae, 0x38, 0xff}, // #7dae38
	{0x7d, 0xae, 0x38, 0xff}, // #7dae38
	{0x94, 0xb6, 0x60, 0xff}, // #94b660
	{0x94, 0xb6, 0x60, 0xff}, // #94b660
	{0x94, 0xb6, 0x60, 0xff}, // #94b660
	{0x94, 0xb6, 0x60, 0xff}, // #94b660
	{0xa5, 0xbc, 0x76, 0xff}, // #a5bc76
	{0xaa, 0xb8, 0x6d, 0xff}, // #aab86d
	{0xad, 0xb5, 0x5f, 0xff}, // #adb55f
	{0xa8, 0xa9, 0x65, 0xff}, // #a8a965
	{0xa8, 0xa9, 0x65, 0xff}, // #a8a965
	{0xae, 0x9f, 0x5c, 0xff}, // #ae9f5c
	{0xae, 0x9f, 0x5c, 0xff}, // #ae9f5c
	{0xb3, 0xa0, 0x53, 0xff}, // #b3a053
	{0xb3, 0xa0, 0x53, 0xff}, // #b3a053
	{0xaf, 0x8a, 0x44, 0xff}, // #af8a44
	{0xaf, 0x8a, 0x44, 0xff}, // #af8a44
	{0xa4, 0x69, 0x05, 0xff}, // #a46905
	{0xa4, 0x69, 0x05, 0xff}, // #a46905
	{0x9f, 0x4d, 0x04, 0xff}, // #9f4d04
	{0x9f, 0x4d, 0x04, 0xff}, // #9f4d04
	{0x9f, 0x4d, 0x04, 0xff}, // #9f4d04
	{0x9f, 0x4d, 0x04, 0xff}, // #9f4d04
	{0x9f, 0x4d, 0x04, 0xff}, // #9f4d04
	{0x9f, 0x4d, 0x04, 0xff}, // #9f4d04
	{0x9f, 0x4d, 0x04, 0xff}, // #9f4d04
	{0x9f, 0x4d, 0x04, 0xff}, // #9f4d04
	{0x9f, 0x4d, 0x04, 0xff}, // #9f4d04
	{0x9f, 0x4d, 0x04, 0xff}, // #9f4d04
	{0x9f, 0x4d, 0x04, 0xff}, // #9f4d04
	{0x9f, 0x4d, 0x04, 0xff}, // #9f4d04
	{0x9f, 0x4d, 0x04, 0xff}, // #9f4d04
	{0x9f, 0x4d, 0x04, 0xff}, // #9f4d04
	{0x9f, 0x4d, 0x04, 0xff}, // #9f4d04
	{0x9f, 0x4d, 0x04, 0xff}, // #9f4d04
	{0x9f, 0x4d, 0x04, 0xff}, // #9f4d04
	{0x9f, 0x4d, 0x04, 0xff}, // #9f4d04
	{0x9f, 0x4d, 0x04, 0xff}, // #9f4d04
}
