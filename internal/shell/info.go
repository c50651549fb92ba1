package shell

// rules text for the INFO screen, one entry per page
var infoPages = []string{
	`Pontoon is blackjack against a computer dealer, with betting, a highscore
table and save/load. Build a hand as close to 21 as you can without going
over. Picture cards are worth 10 and an ACE is worth 11 or 1.

Hands rank as follows:
  BLACKJACK        an ACE and a ten-value card
  FIVE CARD TRICK  five cards totalling 21 or less
  TWENTY ONE       exactly 21 any other way
  HIGHCARD         less than 21
  BUST             more than 21

BLACKJACK and FIVE CARD TRICK pay double the stake.

Player and dealer are each dealt one card face up, then you choose an
initial bet between $1 and $10. Both are dealt a second card; the dealer's
stays face down. If the dealer has BLACKJACK it is shown straight away and,
unless you have BLACKJACK too, you lose twice your bet.
`,
	`On your turn you choose:
  BUY    take a card and raise your bet, from the initial bet up to twice
         it; your first buy caps every later buy in the round
  TWIST  take a card without raising your bet
  STICK  take no more cards and let the dealer play

If you go BUST you lose straight away. Once you stick, the dealer draws
until going BUST or reaching 17 or more.

If nobody is bust the higher hand wins. Ties go to the dealer.

Winnings are added to your score. The game ends when your money runs out.
Rules adapted from https://www.pagat.com/banking/pontoon.html
`,
}
