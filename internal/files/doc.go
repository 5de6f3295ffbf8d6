// Package files reads and writes tables from delimited and spreadsheet
// files. It is the table source and sink around the coercion core: the
// core itself never touches the filesystem.
//
// Format selection goes by file extension: .csv, .tsv and .txt are
// delimited text, .xlsx is an Excel workbook. Delimited reads strip a
// UTF-8 BOM and writes can emit one for Excel compatibility.
package files
