package main

const welcomeBanner = `
 _   _ _______  __
| | | | ____\ \/ /
| |_| |  _|  \  /
|  _  | |___ /  \
|_| |_|_____/_/\_\

Connect your two edges before your opponent connects theirs.
`

const exitBanner = `
Thanks for playing. Goodbye!
`

const rulesText = `
Hex is played on a rhombus of hexagonal cells. Blue claims the top and
bottom edges; Red claims the left and right edges. Players alternate
placing one stone on any empty cell. The first player to complete an
unbroken chain of their own stones between their two edges wins. Hex
has no draws: a completely filled board always has exactly one winner.
`
