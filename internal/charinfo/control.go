package charinfo

import (
	"errors"
	"fmt"
)

// ErrUnknownControlCode is returned for values outside the C0 and C1 sets.
var ErrUnknownControlCode = errors.New("unknown control code")

// ControlCode describes an ASCII C0 or C1 control code.
type ControlCode struct {
	Abbr string
	Alt  string
	Name string
}

var controlCodes = map[rune]ControlCode{
	0x00: {"NUL", "^@", "NULL"},
	0x01: {"SOH", "^A", "START OF HEADING"},
	0x02: {"STX", "^B", "START OF TEXT"},
	0x03: {"ETX", "^C", "END OF TEXT"},
	0x04: {"EOT", "^D", "END OF TRANSMISSION"},
	0x05: {"ENQ", "^E", "ENQUIRY"},
	0x06: {"ACK", "^F", "ACKNOWLEDGE"},
	0x07: {"BEL", "^G", "BELL"},
	0x08: {"BS", "^H", "BACKSPACE"},
	0x09: {"HT", "^I", "HORIZONTAL TABULATION"},
	0x0A: {"LF", "^J", "LINE FEED"},
	0x0B: {"VT", "^K", "VERTICAL TABULATION"},
	0x0C: {"FF", "^L", "FORM FEED"},
	0x0D: {"CR", "^M", "CARRIAGE RETURN"},
	0x0E: {"SO", "^N", "SHIFT OUT"},
	0x0F: {"SI", "^O", "SHIFT IN"},
	0x10: {"DLE", "^P", "DATA LINK ESCAPE"},
	0x11: {"DC1", "^Q", "DEVICE CONTROL ONE"},
	0x12: {"DC2", "^R", "DEVICE CONTROL TWO"},
	0x13: {"DC3", "^S", "DEVICE CONTROL THREE"},
	0x14: {"DC4", "^T", "DEVICE CONTROL FOUR"},
	0x15: {"NAK", "^U", "NEGATIVE ACKNOWLEDGE"},
	0x16: {"SYN", "^V", "SYNCHRONOUS IDLE"},
	0x17: {"ETB", "^W", "END OF TRANSMISSION BLOCK"},
	0x18: {"CAN", "^X", "CANCEL"},
	0x19: {"EM", "^Y", "END OF MEDIUM"},
	0x1A: {"SUB", "^Z", "SUBSTITUTE"},
	0x1B: {"ESC", "^[", "ESCAPE"},
	0x1C: {"FS", `^\`, "FILE SEPARATOR"},
	0x1D: {"GS", "^]", "GROUP SEPARATOR"},
	0x1E: {"RS", "^^", "RECORD SEPARATOR"},
	0x1F: {"US", "^_", "UNIT SEPARATOR"},
	0x7F: {"DEL", "^?", "DELETE"},
	0x80: {"PC", `\200`, "PADDING CHARACTER"},
	0x81: {"HOP", `\201`, "HIGH OCTET PRESET"},
	0x82: {"BPH", `\202`, "BREAK PERMITTED HERE"},
	0x83: {"NBH", `\203`, "NO BREAK HERE"},
	0x84: {"IND", `\204`, "INDEX"},
	0x85: {"NEL", `\205`, "NEXT LINE"},
	0x86: {"SSA", `\206`, "START OF SELECTED AREA"},
	0x87: {"ESA", `\207`, "END OF SELECTED AREA"},
	0x88: {"HTS", `\210`, "HORIZONTAL TABULATION SET"},
	0x89: {"HTJ", `\211`, "HORIZONTAL TABULATION WITH JUSTIFICATION"},
	0x8A: {"LTS", `\212`, "LINE TABULATION SET"},
	0x8B: {"PLD", `\213`, "PARTIAL LINE DOWN"},
	0x8C: {"PLU", `\214`, "PARTIAL LINE UP"},
	0x8D: {"RI", `\215`, "REVERSE INDEX"},
	0x8E: {"SS2", `\216`, "SINGLE-SHIFT TWO"},
	0x8F: {"SS3", `\217`, "SINGLE-SHIFT THREE"},
	0x90: {"DCS", `\220`, "DEVICE CONTROL STRING"},
	0x91: {"PU1", `\221`, "PRIVATE USE ONE"},
	0x92: {"PU2", `\222`, "PRIVATE USE TWO"},
	0x93: {"STS", `\223`, "SET TRANSMIT STATE"},
	0x94: {"CCH", `\224`, "CANCEL CHARACTER"},
	0x95: {"MW", `\225`, "MESSAGE WAITING"},
	0x96: {"SPA", `\226`, "START OF PROTECTED AREA"},
	0x97: {"EPA", `\227`, "END OF PROTECTED AREA"},
	0x98: {"SOS", `\230`, "START OF STRING"},
	0x99: {"SGCI", `\231`, "SINGLE GRAPHIC CHARACTER INTRODUCER"},
	0x9A: {"SCI", `\232`, "SINGLE CHARACTER INTRODUCER"},
	0x9B: {"CSI", `\233`, "CONTROL SEQUENCE INTRODUCER"},
	0x9C: {"ST", `\234`, "STRING TERMINATOR"},
	0x9D: {"OSC", `\235`, "OPERATING SYSTEM COMMAND"},
	0x9E: {"PM", `\236`, "PRIVATE MESSAGE"},
	0x9F: {"APC", `\237`, "APPLICATION PROGRAM COMMAND"},
}

// ResolveControlCode looks up the ASCII control code for value.
func ResolveControlCode(value rune) (ControlCode, error) {
	if cc, ok := controlCodes[value]; ok {
		return cc, nil
	}
	return ControlCode{}, fmt.Errorf("%w: 0x%X", ErrUnknownControlCode, value)
}
