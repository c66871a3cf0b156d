package main

// sample is the opening of Alice's Adventures in Wonderland.
const sample = "Alice was beginning to get very tired of sitting by her sister on the bank, \n" +
	"and of having nothing to do: once or twice she had peeped into the book her sister was reading, \n" +
	"but it had no pictures or conversations in it, 'and what is the use of a book,' thought Alice \n" +
	"'without pictures or conversations?'\n" +
	"\nSo she was considering in her own mind (as well as she could, for the hot day made \n" +
	"her feel very sleepy and stupid), whether the pleasure of making a daisy-chain would \n" +
	"be worth the trouble of getting up and picking the daisies, when suddenly a White Rabbit \n" +
	"with pink eyes ran close by her.\n" +
	"\nThere was nothing so VERY remarkable in that; nor did Alice think it so VERY \n" +
	"much out of the way to hear the Rabbit say to itself, 'Oh dear! Oh dear! I shall be late!' \n" +
	"(when she thought it over afterwards, it occurred to her that she ought to have wondered at \n" +
	"this, but at the time it all seemed quite natural); but when the Rabbit actually TOOK A WATCH \n" +
	"OUT OF ITS WAISTCOAT-POCKET, and looked at it, and then hurried on, Alice started to her feet, \n" +
	"for it flashed across her mind that she had never before seen a rabbit with either a waistcoat-pocket,\n" +
	"or a watch to take out of it, and burning with curiosity, she ran across the field after it, and\n" +
	"fortunately was just in time to see it pop down a large rabbit-hole under the hedge. \n"
