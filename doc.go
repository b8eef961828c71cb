/*
Package assetacts generates asset transfer act documents from Google Sheets registers.

asset-acts reads an assets register and a departments register from two Google Sheets
spreadsheets, joins each asset row with its owning department and renders a DOCX act per
asset from a local template, optionally uploading the generated documents to a shared
drive folder.

asset-acts supports the following commands:

  - generate, to fetch both registers and generate the act documents
  - version, to display the current version
  - help, to display the command list and per-command help
*/
package assetacts
