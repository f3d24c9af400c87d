package nef

import (
    "errors"
    "testing"
    "encoding/binary"
)

// dirEntry describes one directory entry for test buffer construction.
// data is an out of line payload, inline is up to 4 raw bytes packed into
// the value field, otherwise value is written as a 32-bit number.
type dirEntry struct {
    tag     uint16
    typ     tType
    count   uint32
    value   uint32
    inline  []byte
    data    []byte
}

func append16( b []byte, v uint16 ) []byte {
    return append( b, byte(v), byte(v >> 8) )
}

func append32( b []byte, v uint32 ) []byte {
    return append( b, byte(v), byte(v >> 8), byte(v >> 16), byte(v >> 24) )
}

// buildIFD lays out a directory as it would sit at offset dirOff, with out
// of line payloads packed immediately after the directory frame.
func buildIFD( dirOff uint32, entries []dirEntry, next uint32 ) []byte {
    n := uint32(len(entries))
    dataOff := dirOff + _ShortSize + n * _IfdEntrySize + _LongSize
    b := append16( nil, uint16(n) )
    var tail []byte
    for _, e := range entries {
        b = append16( b, e.tag )
        b = append16( b, uint16(e.typ) )
        b = append32( b, e.count )
        switch {
        case e.data != nil:
            b = append32( b, dataOff )
            tail = append( tail, e.data... )
            dataOff += uint32(len(e.data))
        case e.inline != nil:
            v := make( []byte, _valOffSize )
            copy( v, e.inline )
            b = append( b, v... )
        default:
            b = append32( b, e.value )
        }
    }
    b = append32( b, next )
    return append( b, tail... )
}

func tiffHeader( ifd0 uint32 ) []byte {
    b := []byte{ 'I', 'I', _tiffMagic, 0 }
    return append32( b, ifd0 )
}

func rationalBytes( num, den uint32 ) []byte {
    return append32( append32( nil, num ), den )
}

func TestCheckHeader( t *testing.T ) {
    d := desc{ data: tiffHeader( 8 ) }
    offset, err := d.checkHeader( )
    if err != nil {
        t.Fatalf( "valid header rejected: %v", err )
    }
    if offset != 8 {
        t.Errorf( "wrong directory offset: got %d, expected 8", offset )
    }

    big := desc{ data: []byte{ 'M', 'M', 0, _tiffMagic, 0, 0, 0, 8 } }
    if _, err = big.checkHeader( ); ! errors.Is( err, ErrInvalidContainer ) {
        t.Errorf( "big endian header: got %v, expected ErrInvalidContainer", err )
    }

    bad := desc{ data: []byte{ 'I', 'I', 0x55, 0, 8, 0, 0, 0 } }
    if _, err = bad.checkHeader( ); ! errors.Is( err, ErrInvalidContainer ) {
        t.Errorf( "wrong identifier: got %v, expected ErrInvalidContainer", err )
    }

    short := desc{ data: []byte{ 'I', 'I', _tiffMagic } }
    if _, err = short.checkHeader( ); ! errors.Is( err, ErrTruncatedBuffer ) {
        t.Errorf( "short header: got %v, expected ErrTruncatedBuffer", err )
    }
}

// dispatchOne walks a single entry directory and hands the entry to f.
func dispatchOne( t *testing.T, buf []byte, dirOff uint32,
                  f func( *ifdd ) error ) {
    t.Helper( )
    d := desc{ data: buf, endian: binary.LittleEndian }
    if _, err := d.readIFD( dirOff, f ); err != nil {
        t.Fatalf( "directory walk failed: %v", err )
    }
}

func TestRationalValue( t *testing.T ) {
    buf := tiffHeader( 8 )
    buf = append( buf, buildIFD( 8, []dirEntry{
        { tag: _ExposureTime, typ: _UnsignedRational, count: 1,
          data: rationalBytes( 1, 250 ) } }, 0 )... )

    var r Rational
    dispatchOne( t, buf, 8, func( ifd *ifdd ) error {
        var err error
        r, err = ifd.rationalValue( )
        return err
    } )
    if r.Numerator != 1 || r.Denominator != 250 {
        t.Errorf( "wrong value: got %v, expected 1/250", r )
    }

    // the pair is kept as found, two representations of the same duration
    // compare equal only through Float
    buf2 := tiffHeader( 8 )
    buf2 = append( buf2, buildIFD( 8, []dirEntry{
        { tag: _ExposureTime, typ: _UnsignedRational, count: 1,
          data: rationalBytes( 2, 500 ) } }, 0 )... )
    var r2 Rational
    dispatchOne( t, buf2, 8, func( ifd *ifdd ) error {
        var err error
        r2, err = ifd.rationalValue( )
        return err
    } )
    if r2.Numerator != 2 || r2.Denominator != 500 {
        t.Errorf( "wrong value: got %v, expected 2/500", r2 )
    }
    if r.Float( ) != r2.Float( ) {
        t.Errorf( "1/250 and 2/500 should compare equal as floats" )
    }
}

func TestRationalZeroDenominator( t *testing.T ) {
    buf := tiffHeader( 8 )
    buf = append( buf, buildIFD( 8, []dirEntry{
        { tag: _ExposureTime, typ: _UnsignedRational, count: 1,
          data: rationalBytes( 1, 0 ) } }, 0 )... )

    var decodeErr error
    dispatchOne( t, buf, 8, func( ifd *ifdd ) error {
        _, decodeErr = ifd.rationalValue( )
        return nil
    } )
    if decodeErr == nil {
        t.Errorf( "zero denominator accepted" )
    }
}

func TestRationalTypeMismatch( t *testing.T ) {
    buf := tiffHeader( 8 )
    buf = append( buf, buildIFD( 8, []dirEntry{
        { tag: _MeteringMode, typ: _UnsignedShort, count: 1,
          inline: []byte{ 5, 0 } } }, 0 )... )

    var decodeErr error
    dispatchOne( t, buf, 8, func( ifd *ifdd ) error {
        _, decodeErr = ifd.rationalValue( )
        return nil
    } )
    if ! errors.Is( decodeErr, ErrUnsupportedFieldType ) {
        t.Errorf( "got %v, expected ErrUnsupportedFieldType", decodeErr )
    }
}

func TestAsciiValue( t *testing.T ) {
    cases := []struct {
        name    string
        entry   dirEntry
        expect  string
    }{
        { "inline terminated",
          dirEntry{ tag: _Model, typ: _ASCIIString, count: 3,
                    inline: []byte( "ab\x00" ) }, "ab" },
        { "inline unterminated",
          dirEntry{ tag: _Model, typ: _ASCIIString, count: 4,
                    inline: []byte( "abcd" ) }, "abcd" },
        { "out of line",
          dirEntry{ tag: _Model, typ: _ASCIIString, count: 9,
                    data: []byte( "NIKON D5\x00" ) }, "NIKON D5" },
    }
    for _, c := range cases {
        t.Run( c.name, func( t *testing.T ) {
            buf := tiffHeader( 8 )
            buf = append( buf, buildIFD( 8, []dirEntry{ c.entry }, 0 )... )
            var s string
            dispatchOne( t, buf, 8, func( ifd *ifdd ) error {
                var err error
                s, err = ifd.asciiValue( )
                return err
            } )
            if s != c.expect {
                t.Errorf( "got %q, expected %q", s, c.expect )
            }
        } )
    }
}

func TestReadIFDTruncated( t *testing.T ) {
    // the directory claims 40 entries but the buffer ends after one
    buf := tiffHeader( 8 )
    dir := buildIFD( 8, []dirEntry{
        { tag: _Model, typ: _ASCIIString, count: 3,
          inline: []byte( "ab\x00" ) } }, 0 )
    dir[0] = 40
    buf = append( buf, dir... )

    d := desc{ data: buf, endian: binary.LittleEndian }
    _, err := d.readIFD( 8, func( ifd *ifdd ) error { return nil } )
    if ! errors.Is( err, ErrTruncatedBuffer ) {
        t.Errorf( "got %v, expected ErrTruncatedBuffer", err )
    }
}

func TestShortValue( t *testing.T ) {
    buf := tiffHeader( 8 )
    buf = append( buf, buildIFD( 8, []dirEntry{
        { tag: _MeteringMode, typ: _UnsignedShort, count: 1,
          inline: []byte{ 5, 0 } } }, 0 )... )

    var v uint16
    dispatchOne( t, buf, 8, func( ifd *ifdd ) error {
        var err error
        v, err = ifd.shortValue( )
        return err
    } )
    if v != 5 {
        t.Errorf( "got %d, expected 5", v )
    }
}
