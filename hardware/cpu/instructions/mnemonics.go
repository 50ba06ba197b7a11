// This file is part of s65.
//
// s65 is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// s65 is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with s65.  If not, see <https://www.gnu.org/licenses/>.

package instructions

// Mnemonic is the assembler name of an instruction.
type Mnemonic string

// Documented NMOS mnemonics.
const (
	ADC Mnemonic = "ADC"
	AND Mnemonic = "AND"
	ASL Mnemonic = "ASL"
	BCC Mnemonic = "BCC"
	BCS Mnemonic = "BCS"
	BEQ Mnemonic = "BEQ"
	BIT Mnemonic = "BIT"
	BMI Mnemonic = "BMI"
	BNE Mnemonic = "BNE"
	BPL Mnemonic = "BPL"
	BRK Mnemonic = "BRK"
	BVC Mnemonic = "BVC"
	BVS Mnemonic = "BVS"
	CLC Mnemonic = "CLC"
	CLD Mnemonic = "CLD"
	CLI Mnemonic = "CLI"
	CLV Mnemonic = "CLV"
	CMP Mnemonic = "CMP"
	CPX Mnemonic = "CPX"
	CPY Mnemonic = "CPY"
	DEC Mnemonic = "DEC"
	DEX Mnemonic = "DEX"
	DEY Mnemonic = "DEY"
	EOR Mnemonic = "EOR"
	INC Mnemonic = "INC"
	INX Mnemonic = "INX"
	INY Mnemonic = "INY"
	JMP Mnemonic = "JMP"
	JSR Mnemonic = "JSR"
	LDA Mnemonic = "LDA"
	LDX Mnemonic = "LDX"
	LDY Mnemonic = "LDY"
	LSR Mnemonic = "LSR"
	NOP Mnemonic = "NOP"
	ORA Mnemonic = "ORA"
	PHA Mnemonic = "PHA"
	PHP Mnemonic = "PHP"
	PLA Mnemonic = "PLA"
	PLP Mnemonic = "PLP"
	ROL Mnemonic = "ROL"
	ROR Mnemonic = "ROR"
	RTI Mnemonic = "RTI"
	RTS Mnemonic = "RTS"
	SBC Mnemonic = "SBC"
	SEC Mnemonic = "SEC"
	SED Mnemonic = "SED"
	SEI Mnemonic = "SEI"
	STA Mnemonic = "STA"
	STX Mnemonic = "STX"
	STY Mnemonic = "STY"
	TAX Mnemonic = "TAX"
	TAY Mnemonic = "TAY"
	TSX Mnemonic = "TSX"
	TXA Mnemonic = "TXA"
	TXS Mnemonic = "TXS"
	TYA Mnemonic = "TYA"
)

// 65C02 mnemonics.
const (
	BRA Mnemonic = "BRA"
	PHX Mnemonic = "PHX"
	PHY Mnemonic = "PHY"
	PLX Mnemonic = "PLX"
	PLY Mnemonic = "PLY"
	STZ Mnemonic = "STZ"
	TRB Mnemonic = "TRB"
	TSB Mnemonic = "TSB"
)

// WDC 65C02 mnemonics.
const (
	BBR Mnemonic = "BBR"
	BBS Mnemonic = "BBS"
	RMB Mnemonic = "RMB"
	SMB Mnemonic = "SMB"
	STP Mnemonic = "STP"
	WAI Mnemonic = "WAI"
)

// Undocumented NMOS mnemonics. Names follow the "NMOS 6510 Unintended
// Opcodes" document.
const (
	ALR Mnemonic = "ALR"
	ANC Mnemonic = "ANC"
	ANE Mnemonic = "ANE"
	ARR Mnemonic = "ARR"
	DCP Mnemonic = "DCP"
	ISC Mnemonic = "ISC"
	JAM Mnemonic = "JAM"
	LAS Mnemonic = "LAS"
	LAX Mnemonic = "LAX"
	LXA Mnemonic = "LXA"
	RLA Mnemonic = "RLA"
	RRA Mnemonic = "RRA"
	SAX Mnemonic = "SAX"
	SBX Mnemonic = "SBX"
	SHA Mnemonic = "SHA"
	SHX Mnemonic = "SHX"
	SHY Mnemonic = "SHY"
	SLO Mnemonic = "SLO"
	SRE Mnemonic = "SRE"
	TAS Mnemonic = "TAS"
)

func (m Mnemonic) String() string {
	return string(m)
}
