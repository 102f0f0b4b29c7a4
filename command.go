package tft

import "fmt"

// Command is a controller opcode.
type Command byte

// ST7789 commands (from st7789.pdf).
const (
	NOP        Command = 0x00
	SWRESET    Command = 0x01 // Software Reset
	RDDID      Command = 0x04
	RDDST      Command = 0x09
	RDDPM      Command = 0x0A
	RDDMADCTL  Command = 0x0B
	RDDCOLMOD  Command = 0x0C
	RDDIM      Command = 0x0D
	RDDSM      Command = 0x0E
	RDDSDR     Command = 0x0F
	SLPIN      Command = 0x10 // Sleep In
	SLPOUT     Command = 0x11 // Sleep Out
	PTLON      Command = 0x12 // Partial Display Mode On
	NORON      Command = 0x13 // Normal Display Mode On
	INVOFF     Command = 0x20 // Display Inversion Off
	INVON      Command = 0x21 // Display Inversion On
	GAMSET     Command = 0x26
	DISPOFF    Command = 0x28 // Display Off
	DISPON     Command = 0x29 // Display On
	CASET      Command = 0x2A // Column Address Set
	RASET      Command = 0x2B // Row Address Set
	RAMWR      Command = 0x2C // Memory Write
	RAMRD      Command = 0x2E
	PTLAR      Command = 0x30
	VSCRDEF    Command = 0x33
	TEOFF      Command = 0x34
	TEON       Command = 0x35
	MADCTL     Command = 0x36 // Memory Data Access Control
	VSCSAD     Command = 0x37
	IDMOFF     Command = 0x38
	IDMON      Command = 0x39
	COLMOD     Command = 0x3A // Interface Pixel Format
	WRMEMC     Command = 0x3C
	RDMEMC     Command = 0x3E
	STE        Command = 0x44
	GSCAN      Command = 0x45
	WRDISBV    Command = 0x51
	RDDISBV    Command = 0x52
	WRCTRLD    Command = 0x53
	RDCTRLD    Command = 0x54
	WRCACE     Command = 0x55
	RDCABC     Command = 0x56
	WRCABCMB   Command = 0x5E
	RDCABCMB   Command = 0x5F
	RDABCSDR   Command = 0x68
	RAMCTRL    Command = 0xB0
	RGBCTRL    Command = 0xB1
	PORCTRL    Command = 0xB2 // Porch Setting
	FRCTRL1    Command = 0xB3
	PARCTRL    Command = 0xB5
	UNKNOWN    Command = 0xB6 // Undocumented, sent by the vendor init code
	GCTRL      Command = 0xB7 // Gate Control
	GTADJ      Command = 0xB8
	DGMEN      Command = 0xBA
	VCOMS      Command = 0xBB // VCOM Setting
	POWSAVE    Command = 0xBC
	DLPOFFSAVE Command = 0xBD
	LCMCTRL    Command = 0xC0 // LCM Control
	IDSET      Command = 0xC1
	VDVVRHEN   Command = 0xC2 // VDV and VRH Command Enable
	VRHS       Command = 0xC3 // VRH Set
	VDVS       Command = 0xC4 // VDV Set
	VCMOFSET   Command = 0xC5 // VCOM Offset Set
	FRCTRL2    Command = 0xC6 // Frame Rate Control in Normal Mode
	CABCCTRL   Command = 0xC7
	REGSEL1    Command = 0xC8
	REGSEL2    Command = 0xCA
	PWMFRSEL   Command = 0xCC
	PWCTRL1    Command = 0xD0 // Power Control 1
	VAPVANEN   Command = 0xD2
	RDID1      Command = 0xDA
	RDID2      Command = 0xDB
	RDID3      Command = 0xDC
	CMD2EN     Command = 0xDF
	PVGAMCTRL  Command = 0xE0 // Positive Voltage Gamma Control
	NVGAMCTRL  Command = 0xE1 // Negative Voltage Gamma Control
	DGMLUTR    Command = 0xE2
	DGMLUTB    Command = 0xE3
	GATECTRL   Command = 0xE4
	SPI2EN     Command = 0xE7
	PWCTRL2    Command = 0xE8
	EQCTRL     Command = 0xE9
	PROMCTRL   Command = 0xEC
	PROMEN     Command = 0xFA
	NVMSET     Command = 0xFC
	PROMACT    Command = 0xFE
)

var commandNames = map[Command]string{
	NOP: "NOP", SWRESET: "SWRESET", RDDID: "RDDID", RDDST: "RDDST",
	RDDPM: "RDDPM", RDDMADCTL: "RDDMADCTL", RDDCOLMOD: "RDDCOLMOD",
	RDDIM: "RDDIM", RDDSM: "RDDSM", RDDSDR: "RDDSDR", SLPIN: "SLPIN",
	SLPOUT: "SLPOUT", PTLON: "PTLON", NORON: "NORON", INVOFF: "INVOFF",
	INVON: "INVON", GAMSET: "GAMSET", DISPOFF: "DISPOFF", DISPON: "DISPON",
	CASET: "CASET", RASET: "RASET", RAMWR: "RAMWR", RAMRD: "RAMRD",
	PTLAR: "PTLAR", VSCRDEF: "VSCRDEF", TEOFF: "TEOFF", TEON: "TEON",
	MADCTL: "MADCTL", VSCSAD: "VSCSAD", IDMOFF: "IDMOFF", IDMON: "IDMON",
	COLMOD: "COLMOD", WRMEMC: "WRMEMC", RDMEMC: "RDMEMC", STE: "STE",
	GSCAN: "GSCAN", WRDISBV: "WRDISBV", RDDISBV: "RDDISBV",
	WRCTRLD: "WRCTRLD", RDCTRLD: "RDCTRLD", WRCACE: "WRCACE",
	RDCABC: "RDCABC", WRCABCMB: "WRCABCMB", RDCABCMB: "RDCABCMB",
	RDABCSDR: "RDABCSDR", RAMCTRL: "RAMCTRL", RGBCTRL: "RGBCTRL",
	PORCTRL: "PORCTRL", FRCTRL1: "FRCTRL1", PARCTRL: "PARCTRL",
	UNKNOWN: "UNKNOWN", GCTRL: "GCTRL", GTADJ: "GTADJ", DGMEN: "DGMEN",
	VCOMS: "VCOMS", POWSAVE: "POWSAVE", DLPOFFSAVE: "DLPOFFSAVE",
	LCMCTRL: "LCMCTRL", IDSET: "IDSET", VDVVRHEN: "VDVVRHEN", VRHS: "VRHS",
	VDVS: "VDVS", VCMOFSET: "VCMOFSET", FRCTRL2: "FRCTRL2",
	CABCCTRL: "CABCCTRL", REGSEL1: "REGSEL1", REGSEL2: "REGSEL2",
	PWMFRSEL: "PWMFRSEL", PWCTRL1: "PWCTRL1", VAPVANEN: "VAPVANEN",
	RDID1: "RDID1", RDID2: "RDID2", RDID3: "RDID3", CMD2EN: "CMD2EN",
	PVGAMCTRL: "PVGAMCTRL", NVGAMCTRL: "NVGAMCTRL", DGMLUTR: "DGMLUTR",
	DGMLUTB: "DGMLUTB", GATECTRL: "GATECTRL", SPI2EN: "SPI2EN",
	PWCTRL2: "PWCTRL2", EQCTRL: "EQCTRL", PROMCTRL: "PROMCTRL",
	PROMEN: "PROMEN", NVMSET: "NVMSET", PROMACT: "PROMACT",
}

func (c Command) String() string {
	if name, ok := commandNames[c]; ok {
		return name
	}
	return fmt.Sprintf("Command(%#02x)", byte(c))
}
