package nef

// Nikon maker note support: the vendor directory embedded in the Exif
// MakerNote entry, including the scrambled lens data block. Offsets inside
// the maker note are relative to its own nested TIFF header, not to the
// file start, which is why the walk runs on a separate desc.

import (
    "fmt"
    "math"
    "strconv"
    "encoding/binary"
)

const (
    _mnMagicSize        = 6     // "Nikon\0"
    _mnHeaderSize       = 10    // magic, version, reserved

    _lensVersionSize    = 4     // 4 ASCII digits, no terminator
    _lensDataScrambled  = 201   // versions from 0201 up are scrambled
    _lensIdOffset       = 8     // lens id bytes, relative to the version
    _lensIdSize         = 8
)

const (                         // Nikon maker note tags
    _NikonVersion       = 0x0001
    _NikonQuality       = 0x0004
    _NikonWhiteBalance  = 0x0005
    _NikonFocusMode     = 0x0007
    _NikonFlashSetting  = 0x0008
    _NikonSerialNumber  = 0x001d
    _NikonISOInfo       = 0x0025
    _NikonLensType      = 0x0083
    _NikonLensData      = 0x0098
    _NikonShutterCount  = 0x00a7
)

// processMakernote decodes the Nikon maker note if the Exif directory
// carried one. Any failure here loses the maker note fields but never the
// parse: third party software is known to strip or mangle maker notes while
// leaving the rest of the file intact.
func (p *parser) processMakernote( ) {
    if p.makernoteOffset == 0 {
        return
    }
    _ = p.walkMakernote( )
}

func (p *parser) walkMakernote( ) error {
    magic, err := p.d.getBytes( p.makernoteOffset, _mnMagicSize )
    if err != nil {
        return err
    }
    // byte 5 is a control byte with no fixed value and is not compared
    if string(magic[:5]) != "Nikon" {
        return fmt.Errorf( "walkMakernote: unexpected identifier %q: %w",
                           magic[:5], ErrInvalidMakernote )
    }

    // the nested TIFF header follows the 10-byte maker note header and is
    // the origin of every offset inside the maker note, its own IFD
    // included.
    base := p.makernoteOffset + _mnHeaderSize
    mnd := desc{ data: p.d.data, base: base, endian: binary.LittleEndian }
    m, err := mnd.getUnsignedShort( base + 2 )
    if err != nil {
        return err
    }
    if m != _tiffMagic {
        return fmt.Errorf( "walkMakernote: invalid embedded identifier %#02x: %w",
                           m, ErrInvalidMakernote )
    }
    ifdOffset, err := mnd.getUnsignedLong( base + 4 )
    if err != nil {
        return err
    }
    if _, err = mnd.readIFD( base + ifdOffset, p.makerTag ); err != nil {
        return err
    }
    return nil
}

func (p *parser) makerTag( ifd *ifdd ) error {
    var err error
    switch ifd.fTag {
    case _NikonVersion:
        err = p.storeMakernoteVersion( ifd )
    case _NikonQuality:
        err = storeAscii( &p.m.Quality, ifd )
    case _NikonWhiteBalance:
        err = storeAscii( &p.m.WhiteBalance, ifd )
    case _NikonFocusMode:
        err = storeAscii( &p.m.FocusMode, ifd )
    case _NikonFlashSetting:
        err = storeAscii( &p.m.FlashSetting, ifd )
    case _NikonSerialNumber:
        err = storeAscii( &p.m.SerialNumber, ifd )
    case _NikonISOInfo:
        err = p.storeISOInfo( ifd )
    case _NikonLensType:
        err = p.storeLensType( ifd )
    case _NikonLensData:
        err = p.storeLensData( ifd )
    case _NikonShutterCount:
        err = p.storeShutterCount( ifd )
    }
    return err
}

func storeAscii( dst *string, ifd *ifdd ) error {
    s, err := ifd.asciiValue( )
    if err != nil {
        return err
    }
    *dst = s
    return nil
}

// storeMakernoteVersion keeps the version as the 4 raw characters of the
// undefined entry, e.g. "0211". Unlike ASCII entries there is no NUL to
// strip.
func (p *parser) storeMakernoteVersion( ifd *ifdd ) error {
    b, err := ifd.undefinedValue( )
    if err != nil {
        return err
    }
    p.m.MakernoteVersion = string(b)
    return nil
}

// nikonISO converts the raw sensitivity byte to an ISO value: the byte is a
// 1/12 EV step count, so 100 * 2^(raw/12 - 5), rounded up to the next
// multiple of 10 as Nikon bodies display it.
func nikonISO( raw uint8 ) uint32 {
    v := 100 * math.Exp2( float64(raw) / 12 - 5 )
    return uint32(math.Ceil( v / 10 )) * 10
}

// storeISOInfo keeps the sensitivity from the first byte of the ISOInfo
// block. The remaining bytes describe expanded ISO modes and are skipped.
func (p *parser) storeISOInfo( ifd *ifdd ) error {
    b, err := ifd.undefinedValue( )
    if err != nil {
        return err
    }
    if len(b) < 1 {
        return fmt.Errorf( "storeISOInfo: empty entry: %w", ErrTruncatedBuffer )
    }
    iso := nikonISO( b[0] )
    p.m.ISO = &iso
    return nil
}

// storeLensType keeps the single classification byte (AF, D/G, VR bits). It
// later replaces the last byte of the lens id, which Nikon reuses for other
// purposes inside the lens data block.
func (p *parser) storeLensType( ifd *ifdd ) error {
    b, err := ifd.rawValue( )
    if err != nil {
        return err
    }
    if len(b) < 1 {
        return fmt.Errorf( "storeLensType: empty entry: %w", ErrTruncatedBuffer )
    }
    p.lensType = b[0]
    p.hasLensType = true
    return nil
}

// storeLensData copies the block for later: unscrambling needs the serial
// number and shutter count, which may appear after this entry in the
// directory.
func (p *parser) storeLensData( ifd *ifdd ) error {
    b, err := ifd.undefinedValue( )
    if err != nil {
        return err
    }
    p.lens = append( []byte(nil), b... )
    return nil
}

func (p *parser) storeShutterCount( ifd *ifdd ) error {
    v, err := ifd.longValue( )
    if err != nil {
        return err
    }
    p.m.ShutterCount = &v
    return nil
}

// resolveLens identifies the mounted lens from the lens data block, once
// all maker note entries are in. The block starts with a 4 character
// version; from version 0201 the bytes after the version are scrambled with
// a key derived from the camera serial number and shutter count. A block
// that cannot be unscrambled, or a version that cannot be read, leaves
// LensModel empty; an unscrambled id with no table match yields "Unknown".
func (p *parser) resolveLens( ) {
    if p.lens == nil {
        return
    }
    if len(p.lens) < _lensVersionSize + _lensIdOffset + _lensIdSize {
        return
    }
    version, err := strconv.Atoi( string(p.lens[:_lensVersionSize]) )
    if err != nil {
        return
    }
    payload := p.lens[_lensVersionSize:]
    if version >= _lensDataScrambled {
        if p.m.SerialNumber == "" || p.m.ShutterCount == nil {
            p.m.LensModel = "Unknown"
            return
        }
        if err = unscramble( payload, p.m.SerialNumber,
                             *p.m.ShutterCount ); err != nil {
            return
        }
    }
    var id [8]uint8
    copy( id[:], payload[_lensIdOffset:_lensIdOffset+_lensIdSize] )
    if p.hasLensType {
        id[7] = p.lensType
    }
    p.m.LensModel = getLensModel( id )
}

// unscramble reverses Nikon's byte stream cipher in place. The stream is a
// pure XOR keyed by the serial number modulo 256 and by the XOR of the 4
// shutter count bytes, so applying it twice restores the input.
func unscramble( data []byte, serial string, count uint32 ) error {
    sn, err := strconv.ParseUint( serial, 10, 64 )
    if err != nil {
        return fmt.Errorf( "unscramble: serial number %q: %w",
                           serial, ErrDecrypt )
    }
    ci := xlat0[byte(sn)]
    cKey := byte(count) ^ byte(count >> 8) ^ byte(count >> 16) ^ byte(count >> 24)
    cj := xlat1[cKey]
    ck := byte(0x60)
    for i := range data {
        cj += ci * ck
        ck++
        data[i] ^= cj
    }
    return nil
}

var xlat0 = [256]byte {
0xc1,0xbf,0x6d,0x0d,0x59,0xc5,0x13,0x9d,0x83,0x61,0x6b,0x4f,0xc7,0x7f,0x3d,0x3d,
0x53,0x59,0xe3,0xc7,0xe9,0x2f,0x95,0xa7,0x95,0x1f,0xdf,0x7f,0x2b,0x29,0xc7,0x0d,
0xdf,0x07,0xef,0x71,0x89,0x3d,0x13,0x3d,0x3b,0x13,0xfb,0x0d,0x89,0xc1,0x65,0x1f,
0xb3,0x0d,0x6b,0x29,0xe3,0xfb,0xef,0xa3,0x6b,0x47,0x7f,0x95,0x35,0xa7,0x47,0x4f,
0xc7,0xf1,0x59,0x95,0x35,0x11,0x29,0x61,0xf1,0x3d,0xb3,0x2b,0x0d,0x43,0x89,0xc1,
0x9d,0x9d,0x89,0x65,0xf1,0xe9,0xdf,0xbf,0x3d,0x7f,0x53,0x97,0xe5,0xe9,0x95,0x17,
0x1d,0x3d,0x8b,0xfb,0xc7,0xe3,0x67,0xa7,0x07,0xf1,0x71,0xa7,0x53,0xb5,0x29,0x89,
0xe5,0x2b,0xa7,0x17,0x29,0xe9,0x4f,0xc5,0x65,0x6d,0x6b,0xef,0x0d,0x89,0x49,0x2f,
0xb3,0x43,0x53,0x65,0x1d,0x49,0xa3,0x13,0x89,0x59,0xef,0x6b,0xef,0x65,0x1d,0x0b,
0x59,0x13,0xe3,0x4f,0x9d,0xb3,0x29,0x43,0x2b,0x07,0x1d,0x95,0x59,0x59,0x47,0xfb,
0xe5,0xe9,0x61,0x47,0x2f,0x35,0x7f,0x17,0x7f,0xef,0x7f,0x95,0x95,0x71,0xd3,0xa3,
0x0b,0x71,0xa3,0xad,0x0b,0x3b,0xb5,0xfb,0xa3,0xbf,0x4f,0x83,0x1d,0xad,0xe9,0x2f,
0x71,0x65,0xa3,0xe5,0x07,0x35,0x3d,0x0d,0xb5,0xe9,0xe5,0x47,0x3b,0x9d,0xef,0x35,
0xa3,0xbf,0xb3,0xdf,0x53,0xd3,0x97,0x53,0x49,0x71,0x07,0x35,0x61,0x71,0x2f,0x43,
0x2f,0x11,0xdf,0x17,0x97,0xfb,0x95,0x3b,0x7f,0x6b,0xd3,0x25,0xbf,0xad,0xc7,0xc5,
0xc5,0xb5,0x8b,0xef,0x2f,0xd3,0x07,0x6b,0x25,0x49,0x95,0x25,0x49,0x6d,0x71,0xc7 }

var xlat1 = [256]byte {
0xa7,0xbc,0xc9,0xad,0x91,0xdf,0x85,0xe5,0xd4,0x78,0xd5,0x17,0x46,0x7c,0x29,0x4c,
0x4d,0x03,0xe9,0x25,0x68,0x11,0x86,0xb3,0xbd,0xf7,0x6f,0x61,0x22,0xa2,0x26,0x34,
0x2a,0xbe,0x1e,0x46,0x14,0x68,0x9d,0x44,0x18,0xc2,0x40,0xf4,0x7e,0x5f,0x1b,0xad,
0x0b,0x94,0xb6,0x67,0xb4,0x0b,0xe1,0xea,0x95,0x9c,0x66,0xdc,0xe7,0x5d,0x6c,0x05,
0xda,0xd5,0xdf,0x7a,0xef,0xf6,0xdb,0x1f,0x82,0x4c,0xc0,0x68,0x47,0xa1,0xbd,0xee,
0x39,0x50,0x56,0x4a,0xdd,0xdf,0xa5,0xf8,0xc6,0xda,0xca,0x90,0xca,0x01,0x42,0x9d,
0x8b,0x0c,0x73,0x43,0x75,0x05,0x94,0xde,0x24,0xb3,0x80,0x34,0xe5,0x2c,0xdc,0x9b,
0x3f,0xca,0x33,0x45,0xd0,0xdb,0x5f,0xf5,0x52,0xc3,0x21,0xda,0xe2,0x22,0x72,0x6b,
0x3e,0xd0,0x5b,0xa8,0x87,0x8c,0x06,0x5d,0x0f,0xdd,0x09,0x19,0x93,0xd0,0xb9,0xfc,
0x8b,0x0f,0x84,0x60,0x33,0x1c,0x9b,0x45,0xf1,0xf0,0xa3,0x94,0x3a,0x12,0x77,0x33,
0x4d,0x44,0x78,0x28,0x3c,0x9e,0xfd,0x65,0x57,0x16,0x94,0x6b,0xfb,0x59,0xd0,0xc8,
0x22,0x36,0xdb,0xd2,0x63,0x98,0x43,0xa1,0x04,0x87,0x86,0xf7,0xa6,0x26,0xbb,0xd6,
0x59,0x4d,0xbf,0x6a,0x2e,0xaa,0x2b,0xef,0xe6,0x78,0xb6,0x4e,0xe0,0x2f,0xdc,0x7c,
0xbe,0x57,0x19,0x32,0x7e,0x2a,0xd0,0xb8,0xba,0x29,0x00,0x3c,0x52,0x7d,0xa8,0x49,
0x3b,0x2d,0xeb,0x25,0x49,0xfa,0xa3,0xaa,0x39,0xa7,0xc5,0xa7,0x50,0x11,0x36,0xfb,
0xc6,0x67,0x4a,0xf5,0xa5,0x12,0x65,0x7e,0xb0,0xdf,0xaf,0x4e,0xb3,0x61,0x7f,0x2f }

type lensIdConv struct {
    ids     [8]uint8
    model   string
}

// getLensModel returns the model name matching the 8 lens id bytes, or
// "Unknown" for a combination the table does not carry.
func getLensModel( ids [8]uint8 ) string {
    for i := 0; i < len(lensIDs); i++ {
        if lensIDs[i].ids == ids {
            return lensIDs[i].model
        }
    }
    return "Unknown"
}

var lensIDs = [...]lensIdConv{
{[8]uint8{0x01,0x58,0x50,0x50,0x14,0x14,0x02,0x00}, "AF Nikkor 50mm f/1.8"},
{[8]uint8{0x02,0x42,0x44,0x5C,0x2A,0x34,0x02,0x00}, "AF Zoom-Nikkor 35-70mm f/3.3-4.5"},
{[8]uint8{0x04,0x48,0x3C,0x3C,0x24,0x24,0x03,0x00}, "AF Nikkor 28mm f/2.8"},
{[8]uint8{0x05,0x54,0x50,0x50,0x0C,0x0C,0x04,0x00}, "AF Nikkor 50mm f/1.4"},
{[8]uint8{0x09,0x48,0x37,0x37,0x24,0x24,0x04,0x00}, "AF Nikkor 24mm f/2.8"},
{[8]uint8{0x0A,0x48,0x8E,0x8E,0x24,0x24,0x03,0x00}, "AF Nikkor 300mm f/2.8 IF-ED"},
{[8]uint8{0x0B,0x48,0x7C,0x7C,0x24,0x24,0x05,0x00}, "AF Nikkor 180mm f/2.8 IF-ED"},
{[8]uint8{0x11,0x48,0x44,0x5C,0x24,0x24,0x08,0x00}, "AF Zoom-Nikkor 35-70mm f/2.8"},
{[8]uint8{0x14,0x48,0x60,0x80,0x24,0x24,0x0B,0x00}, "AF Zoom-Nikkor 80-200mm f/2.8 ED"},
{[8]uint8{0x15,0x4C,0x62,0x62,0x14,0x14,0x0C,0x00}, "AF Nikkor 85mm f/1.8"},
{[8]uint8{0x1A,0x54,0x44,0x44,0x18,0x18,0x11,0x00}, "AF Nikkor 35mm f/2"},
{[8]uint8{0x1C,0x48,0x30,0x30,0x24,0x24,0x12,0x00}, "AF Nikkor 20mm f/2.8"},
{[8]uint8{0x1E,0x54,0x56,0x56,0x24,0x24,0x13,0x00}, "AF Micro-Nikkor 60mm f/2.8"},
{[8]uint8{0x1F,0x54,0x6A,0x6A,0x24,0x24,0x14,0x00}, "AF Micro-Nikkor 105mm f/2.8"},
{[8]uint8{0x22,0x48,0x72,0x72,0x18,0x18,0x16,0x00}, "AF DC-Nikkor 135mm f/2"},
{[8]uint8{0x24,0x48,0x60,0x80,0x24,0x24,0x1A,0x02}, "AF Zoom-Nikkor 80-200mm f/2.8D ED"},
{[8]uint8{0x25,0x48,0x44,0x5C,0x24,0x24,0x1B,0x02}, "AF Zoom-Nikkor 35-70mm f/2.8D"},
{[8]uint8{0x27,0x48,0x8E,0x8E,0x24,0x24,0x1D,0x02}, "AF-I Nikkor 300mm f/2.8D IF-ED"},
{[8]uint8{0x2A,0x54,0x3C,0x3C,0x0C,0x0C,0x26,0x02}, "AF Nikkor 28mm f/1.4D"},
{[8]uint8{0x2C,0x48,0x6A,0x6A,0x18,0x18,0x27,0x02}, "AF DC-Nikkor 105mm f/2D"},
{[8]uint8{0x2D,0x48,0x80,0x80,0x30,0x30,0x21,0x02}, "AF Micro-Nikkor 200mm f/4D IF-ED"},
{[8]uint8{0x2F,0x48,0x30,0x44,0x24,0x24,0x29,0x02}, "AF Zoom-Nikkor 20-35mm f/2.8D IF"},
{[8]uint8{0x31,0x54,0x56,0x56,0x24,0x24,0x25,0x02}, "AF Micro-Nikkor 60mm f/2.8D"},
{[8]uint8{0x32,0x54,0x6A,0x6A,0x24,0x24,0x35,0x02}, "AF Micro-Nikkor 105mm f/2.8D"},
{[8]uint8{0x34,0x48,0x29,0x29,0x24,0x24,0x32,0x02}, "AF Fisheye Nikkor 16mm f/2.8D"},
{[8]uint8{0x36,0x48,0x37,0x37,0x24,0x24,0x34,0x02}, "AF Nikkor 24mm f/2.8D"},
{[8]uint8{0x37,0x48,0x30,0x30,0x24,0x24,0x36,0x02}, "AF Nikkor 20mm f/2.8D"},
{[8]uint8{0x38,0x4C,0x62,0x62,0x14,0x14,0x37,0x02}, "AF Nikkor 85mm f/1.8D"},
{[8]uint8{0x3E,0x48,0x3C,0x3C,0x24,0x24,0x3D,0x02}, "AF Nikkor 28mm f/2.8D"},
{[8]uint8{0x41,0x48,0x7C,0x7C,0x24,0x24,0x43,0x02}, "AF Nikkor 180mm f/2.8D IF-ED"},
{[8]uint8{0x42,0x54,0x44,0x44,0x18,0x18,0x44,0x02}, "AF Nikkor 35mm f/2D"},
{[8]uint8{0x43,0x54,0x50,0x50,0x0C,0x0C,0x46,0x02}, "AF Nikkor 50mm f/1.4D"},
{[8]uint8{0x48,0x48,0x8E,0x8E,0x24,0x24,0x4B,0x02}, "AF-S Nikkor 300mm f/2.8D IF-ED"},
{[8]uint8{0x4A,0x54,0x62,0x62,0x0C,0x0C,0x4D,0x02}, "AF Nikkor 85mm f/1.4D IF"},
{[8]uint8{0x4C,0x40,0x37,0x6E,0x2C,0x3C,0x4F,0x02}, "AF Zoom-Nikkor 24-120mm f/3.5-5.6D IF"},
{[8]uint8{0x4E,0x48,0x72,0x72,0x18,0x18,0x51,0x02}, "AF DC-Nikkor 135mm f/2D"},
{[8]uint8{0x56,0x48,0x5C,0x8E,0x30,0x3C,0x5A,0x02}, "AF Zoom-Nikkor 70-300mm f/4-5.6D ED"},
{[8]uint8{0x5D,0x48,0x3C,0x5C,0x24,0x24,0x63,0x02}, "AF-S Zoom-Nikkor 28-70mm f/2.8D IF-ED"},
{[8]uint8{0x5E,0x48,0x60,0x80,0x24,0x24,0x64,0x02}, "AF-S Zoom-Nikkor 80-200mm f/2.8D IF-ED"},
{[8]uint8{0x63,0x48,0x2B,0x44,0x24,0x24,0x68,0x02}, "AF-S Nikkor 17-35mm f/2.8D IF-ED"},
{[8]uint8{0x65,0x44,0x60,0x98,0x34,0x3C,0x6B,0x0A}, "AF VR Zoom-Nikkor 80-400mm f/4.5-5.6D ED"},
{[8]uint8{0x66,0x40,0x2D,0x44,0x2C,0x34,0x6C,0x02}, "AF Zoom-Nikkor 18-35mm f/3.5-4.5D IF-ED"},
{[8]uint8{0x6A,0x48,0x8E,0x8E,0x30,0x30,0x70,0x02}, "AF-S Nikkor 300mm f/4D IF-ED"},
{[8]uint8{0x6B,0x48,0x24,0x24,0x24,0x24,0x71,0x02}, "AF Nikkor ED 14mm f/2.8D"},
{[8]uint8{0x76,0x58,0x50,0x50,0x14,0x14,0x7A,0x02}, "AF Nikkor 50mm f/1.8D"},
{[8]uint8{0x77,0x48,0x5C,0x80,0x24,0x24,0x7B,0x0E}, "AF-S VR Zoom-Nikkor 70-200mm f/2.8G IF-ED"},
{[8]uint8{0x78,0x40,0x37,0x6E,0x2C,0x3C,0x7C,0x0E}, "AF-S VR Zoom-Nikkor 24-120mm f/3.5-5.6G IF-ED"},
{[8]uint8{0x7A,0x3C,0x1F,0x37,0x30,0x30,0x7E,0x06}, "AF-S DX Zoom-Nikkor 12-24mm f/4G IF-ED"},
{[8]uint8{0x7D,0x48,0x2B,0x53,0x24,0x24,0x82,0x06}, "AF-S DX Zoom-Nikkor 17-55mm f/2.8G IF-ED"},
{[8]uint8{0x7F,0x40,0x2D,0x5C,0x2C,0x34,0x84,0x06}, "AF-S DX Zoom-Nikkor 18-70mm f/3.5-4.5G IF-ED"},
{[8]uint8{0x80,0x48,0x1A,0x1A,0x24,0x24,0x85,0x06}, "AF DX Fisheye-Nikkor 10.5mm f/2.8G ED"},
{[8]uint8{0x81,0x54,0x80,0x80,0x18,0x18,0x86,0x0E}, "AF-S VR Nikkor 200mm f/2G IF-ED"},
{[8]uint8{0x82,0x48,0x8E,0x8E,0x24,0x24,0x87,0x0E}, "AF-S VR Nikkor 300mm f/2.8G IF-ED"},
{[8]uint8{0x89,0x3C,0x53,0x80,0x30,0x3C,0x8B,0x06}, "AF-S DX Zoom-Nikkor 55-200mm f/4-5.6G ED"},
{[8]uint8{0x8A,0x54,0x6A,0x6A,0x24,0x24,0x8C,0x0E}, "AF-S VR Micro-Nikkor 105mm f/2.8G IF-ED"},
{[8]uint8{0x8B,0x40,0x2D,0x80,0x2C,0x3C,0x8D,0x0E}, "AF-S DX VR Zoom-Nikkor 18-200mm f/3.5-5.6G IF-ED"},
{[8]uint8{0x8C,0x40,0x2D,0x53,0x2C,0x3C,0x8E,0x06}, "AF-S DX Zoom-Nikkor 18-55mm f/3.5-5.6G ED"},
{[8]uint8{0x8D,0x44,0x5C,0x8E,0x34,0x3C,0x8F,0x0E}, "AF-S VR Zoom-Nikkor 70-300mm f/4.5-5.6G IF-ED"},
{[8]uint8{0x90,0x3B,0x53,0x80,0x30,0x3C,0x92,0x0E}, "AF-S DX VR Zoom-Nikkor 55-200mm f/4-5.6G IF-ED"},
{[8]uint8{0x92,0x48,0x24,0x37,0x24,0x24,0x94,0x06}, "AF-S Zoom-Nikkor 14-24mm f/2.8G ED"},
{[8]uint8{0x93,0x48,0x37,0x5C,0x24,0x24,0x95,0x06}, "AF-S Zoom-Nikkor 24-70mm f/2.8G ED"},
{[8]uint8{0x96,0x48,0x98,0x98,0x24,0x24,0x98,0x0E}, "AF-S VR Nikkor 400mm f/2.8G ED"},
{[8]uint8{0x97,0x3C,0xA0,0xA0,0x30,0x30,0x99,0x0E}, "AF-S VR Nikkor 500mm f/4G ED"},
{[8]uint8{0x98,0x3C,0xA6,0xA6,0x30,0x30,0x9A,0x0E}, "AF-S VR Nikkor 600mm f/4G ED"},
{[8]uint8{0x99,0x40,0x29,0x62,0x2C,0x3C,0x9B,0x0E}, "AF-S DX VR Zoom-Nikkor 16-85mm f/3.5-5.6G ED"},
{[8]uint8{0x9C,0x54,0x56,0x56,0x24,0x24,0x9E,0x06}, "AF-S Micro Nikkor 60mm f/2.8G ED"},
{[8]uint8{0x9E,0x40,0x2D,0x6A,0x2C,0x3C,0xA0,0x0E}, "AF-S DX VR Zoom-Nikkor 18-105mm f/3.5-5.6G ED"},
{[8]uint8{0x9F,0x58,0x44,0x44,0x14,0x14,0xA1,0x06}, "AF-S DX Nikkor 35mm f/1.8G"},
{[8]uint8{0xA0,0x54,0x50,0x50,0x0C,0x0C,0xA2,0x06}, "AF-S Nikkor 50mm f/1.4G"},
{[8]uint8{0xA1,0x40,0x18,0x37,0x2C,0x34,0xA3,0x06}, "AF-S DX Nikkor 10-24mm f/3.5-4.5G ED"},
{[8]uint8{0xA2,0x48,0x5C,0x80,0x24,0x24,0xA4,0x0E}, "AF-S Nikkor 70-200mm f/2.8G ED VR II"},
{[8]uint8{0xA3,0x3C,0x29,0x44,0x30,0x30,0xA5,0x0E}, "AF-S Nikkor 16-35mm f/4G ED VR"},
{[8]uint8{0xA4,0x54,0x37,0x37,0x0C,0x0C,0xA6,0x06}, "AF-S Nikkor 24mm f/1.4G ED"},
{[8]uint8{0xA5,0x40,0x3C,0x8E,0x2C,0x3C,0xA7,0x0E}, "AF-S Nikkor 28-300mm f/3.5-5.6G ED VR"},
{[8]uint8{0xA6,0x48,0x8E,0x8E,0x24,0x24,0xA8,0x0E}, "AF-S Nikkor 300mm f/2.8G IF-ED VR II"},
{[8]uint8{0xA7,0x4B,0x62,0x62,0x2C,0x2C,0xA9,0x0E}, "AF-S DX Micro Nikkor 85mm f/3.5G ED VR"},
{[8]uint8{0xA9,0x54,0x80,0x80,0x18,0x18,0xAB,0x0E}, "AF-S Nikkor 200mm f/2G ED VR II"},
{[8]uint8{0xAA,0x3C,0x37,0x6E,0x30,0x30,0xAC,0x0E}, "AF-S Nikkor 24-120mm f/4G ED VR"},
{[8]uint8{0xAC,0x38,0x53,0x8E,0x34,0x3C,0xAE,0x0E}, "AF-S DX Nikkor 55-300mm f/4.5-5.6G ED VR"},
{[8]uint8{0xAD,0x3C,0x2D,0x8E,0x2C,0x3C,0xAF,0x0E}, "AF-S DX Nikkor 18-300mm f/3.5-5.6G ED VR"},
{[8]uint8{0xAE,0x54,0x62,0x62,0x0C,0x0C,0xB0,0x06}, "AF-S Nikkor 85mm f/1.4G"},
{[8]uint8{0xAF,0x54,0x44,0x44,0x0C,0x0C,0xB1,0x06}, "AF-S Nikkor 35mm f/1.4G"},
{[8]uint8{0xB0,0x4C,0x50,0x50,0x14,0x14,0xB2,0x06}, "AF-S Nikkor 50mm f/1.8G"},
{[8]uint8{0xB1,0x48,0x48,0x48,0x24,0x24,0xB3,0x06}, "AF-S DX Micro Nikkor 40mm f/2.8G"},
{[8]uint8{0xB2,0x48,0x5C,0x80,0x30,0x30,0xB4,0x0E}, "AF-S Nikkor 70-200mm f/4G ED VR"},
{[8]uint8{0xB3,0x4C,0x62,0x62,0x14,0x14,0xB5,0x06}, "AF-S Nikkor 85mm f/1.8G"},
{[8]uint8{0xB4,0x40,0x37,0x62,0x2C,0x34,0xB6,0x0E}, "AF-S Zoom-Nikkor 24-85mm f/3.5-4.5G IF-ED VR"},
{[8]uint8{0xB5,0x4C,0x3C,0x3C,0x14,0x14,0xB7,0x06}, "AF-S Nikkor 28mm f/1.8G"},
{[8]uint8{0xB6,0x3C,0xB0,0xB0,0x3C,0x3C,0xB8,0x4E}, "AF-S VR Nikkor 800mm f/5.6E FL ED"},
{[8]uint8{0xB7,0x44,0x60,0x98,0x34,0x3C,0xB9,0x0E}, "AF-S Nikkor 80-400mm f/4.5-5.6G ED VR"},
{[8]uint8{0xB8,0x40,0x2D,0x44,0x2C,0x34,0xBA,0x06}, "AF-S Nikkor 18-35mm f/3.5-4.5G ED"},
{[8]uint8{0xA0,0x40,0x2D,0x74,0x2C,0x3C,0xBB,0x0E}, "AF-S DX Nikkor 18-140mm f/3.5-5.6G ED VR"},
{[8]uint8{0xA1,0x54,0x55,0x55,0x0C,0x0C,0xBC,0x06}, "AF-S Nikkor 58mm f/1.4G"},
{[8]uint8{0xA2,0x40,0x2D,0x53,0x2C,0x3C,0xBD,0x0E}, "AF-S DX Nikkor 18-55mm f/3.5-5.6G VR II"},
{[8]uint8{0xA4,0x40,0x2D,0x8E,0x2C,0x40,0xBF,0x0E}, "AF-S DX Nikkor 18-300mm f/3.5-6.3G ED VR"},
{[8]uint8{0xA5,0x4C,0x44,0x44,0x14,0x14,0xC0,0x06}, "AF-S Nikkor 35mm f/1.8G ED"},
{[8]uint8{0xA6,0x48,0x98,0x98,0x24,0x24,0xC1,0x0E}, "AF-S Nikkor 400mm f/2.8E FL ED VR"},
{[8]uint8{0xA7,0x3C,0x53,0x80,0x30,0x3C,0xC2,0x0E}, "AF-S DX Nikkor 55-200mm f/4-5.6G ED VR II"},
{[8]uint8{0xA8,0x48,0x8E,0x8E,0x30,0x30,0xC3,0x4E}, "AF-S Nikkor 300mm f/4E PF ED VR"},
{[8]uint8{0xA8,0x48,0x8E,0x8E,0x30,0x30,0xC3,0x0E}, "AF-S Nikkor 300mm f/4E PF ED VR"},
{[8]uint8{0xA9,0x4C,0x31,0x31,0x14,0x14,0xC4,0x06}, "AF-S Nikkor 20mm f/1.8G ED"},
{[8]uint8{0xAA,0x48,0x37,0x5C,0x24,0x24,0xC5,0x4E}, "AF-S Nikkor 24-70mm f/2.8E ED VR"},
{[8]uint8{0xAA,0x48,0x37,0x5C,0x24,0x24,0xC5,0x0E}, "AF-S Nikkor 24-70mm f/2.8E ED VR"},
{[8]uint8{0xAB,0x3C,0xA0,0xA0,0x30,0x30,0xC6,0x4E}, "AF-S Nikkor 500mm f/4E FL ED VR"},
{[8]uint8{0xAC,0x3C,0xA6,0xA6,0x30,0x30,0xC7,0x4E}, "AF-S Nikkor 600mm f/4E FL ED VR"},
{[8]uint8{0xAD,0x48,0x28,0x60,0x24,0x30,0xC8,0x4E}, "AF-S DX Nikkor 16-80mm f/2.8-4E ED VR"},
{[8]uint8{0xAD,0x48,0x28,0x60,0x24,0x30,0xC8,0x0E}, "AF-S DX Nikkor 16-80mm f/2.8-4E ED VR"},
{[8]uint8{0xAE,0x3C,0x80,0xA0,0x3C,0x3C,0xC9,0x4E}, "AF-S Nikkor 200-500mm f/5.6E ED VR"},
{[8]uint8{0xAE,0x3C,0x80,0xA0,0x3C,0x3C,0xC9,0x0E}, "AF-S Nikkor 200-500mm f/5.6E ED VR"},
{[8]uint8{0xA0,0x40,0x2D,0x53,0x2C,0x3C,0xCA,0x0E}, "AF-P DX Nikkor 18-55mm f/3.5-5.6G VR"},
{[8]uint8{0xAF,0x4C,0x37,0x37,0x14,0x14,0xCC,0x06}, "AF-S Nikkor 24mm f/1.8G ED"},
{[8]uint8{0xA3,0x38,0x5C,0x8E,0x34,0x40,0xCE,0x8E}, "AF-P DX Nikkor 70-300mm f/4.5-6.3G ED VR"},
{[8]uint8{0xA4,0x48,0x5C,0x80,0x24,0x24,0xCF,0x4E}, "AF-S Nikkor 70-200mm f/2.8E FL ED VR"},
{[8]uint8{0xA4,0x48,0x5C,0x80,0x24,0x24,0xCF,0x0E}, "AF-S Nikkor 70-200mm f/2.8E FL ED VR"},
{[8]uint8{0xA5,0x54,0x6A,0x6A,0x0C,0x0C,0xD0,0x46}, "AF-S Nikkor 105mm f/1.4E ED"},
{[8]uint8{0xA5,0x54,0x6A,0x6A,0x0C,0x0C,0xD0,0x06}, "AF-S Nikkor 105mm f/1.4E ED"},
{[8]uint8{0xA7,0x40,0x11,0x26,0x2C,0x34,0xD2,0x46}, "AF-S Fisheye Nikkor 8-15mm f/3.5-4.5E ED"},
{[8]uint8{0xA8,0x38,0x18,0x30,0x34,0x3C,0xD3,0x8E}, "AF-P DX Nikkor 10-20mm f/4.5-5.6G VR"},
{[8]uint8{0xA9,0x48,0x7C,0x98,0x30,0x30,0xD4,0x4E}, "AF-S Nikkor 180-400mm f/4E TC1.4 FL ED VR"},
{[8]uint8{0xAB,0x44,0x5C,0x8E,0x34,0x3C,0xD6,0xCE}, "AF-P Nikkor 70-300mm f/4.5-5.6E ED VR"},
{[8]uint8{0xAB,0x44,0x5C,0x8E,0x34,0x3C,0xD6,0x4E}, "AF-P Nikkor 70-300mm f/4.5-5.6E ED VR"},
{[8]uint8{0xAC,0x54,0x3C,0x3C,0x0C,0x0C,0xD7,0x46}, "AF-S Nikkor 28mm f/1.4E ED"},
{[8]uint8{0xAD,0x3C,0xA0,0xA0,0x3C,0x3C,0xD8,0x4E}, "AF-S Nikkor 500mm f/5.6E PF ED VR"},
{[8]uint8{0xAD,0x3C,0xA0,0xA0,0x3C,0x3C,0xD8,0x0E}, "AF-S Nikkor 500mm f/5.6E PF ED VR"},
{[8]uint8{0xE3,0x40,0x76,0xA6,0x38,0x40,0xDF,0x4E}, "Tamron SP 150-600mm f/5-6.3 Di VC USD G2"},
{[8]uint8{0xE3,0x40,0x76,0xA6,0x38,0x40,0xDF,0x0E}, "Tamron SP 150-600mm f/5-6.3 Di VC USD G2"} }
