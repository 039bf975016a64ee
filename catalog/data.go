package catalog

//settings lists the 530 Hall settings of the 230 space groups, in the
//order of the International Tables. The Hall number is the index plus one.
var settings = [...]setting{
	{1, "P 1", "P 1", ""},
	{2, "P -1", "-P 1", ""},
	{3, "P 1 2 1 unique b axis", "P 2y", ""},
	{3, "P 1 1 2 unique c axis", "P 2", ""},
	{3, "P 2 1 1 unique a axis", "P 2x", ""},
	{4, "P 1 21 1 unique b axis", "P 2yb", ""},
	{4, "P 1 1 21 unique c axis", "P 2c", ""},
	{4, "P 21 1 1 unique a axis", "P 2xa", ""},
	{5, "C 1 2 1 unique b axis: cell choice 1", "C 2y", ""},
	{5, "A 1 2 1 unique b axis: cell choice 2", "A 2y", ""},
	{5, "I 1 2 1 unique b axis: cell choice 3", "I 2y", ""},
	{5, "A 1 1 2 unique c axis: cell choice 1", "A 2", ""},
	{5, "B 1 1 2 unique c axis: cell choice 2", "B 2", ""},
	{5, "I 1 1 2 unique c axis: cell choice 3", "I 2", ""},
	{5, "B 2 1 1 unique a axis: cell choice 1", "B 2x", ""},
	{5, "C 2 1 1 unique a axis: cell choice 2", "C 2x", ""},
	{5, "I 2 1 1 unique a axis: cell choice 3", "I 2x", ""},
	{6, "P 1 m 1 unique b axis", "P -2y", ""},
	{6, "P 1 1 m unique c axis", "P -2", ""},
	{6, "P m 1 1 unique a axis", "P -2x", ""},
	{7, "P 1 c 1 unique b axis: cell choice 1", "P -2yc", ""},
	{7, "P 1 n 1 unique b axis: cell choice 2", "P -2yac", ""},
	{7, "P 1 a 1 unique b axis: cell choice 3", "P -2ya", ""},
	{7, "P 1 1 a unique c axis: cell choice 1", "P -2a", ""},
	{7, "P 1 1 n unique c axis: cell choice 2", "P -2ab", ""},
	{7, "P 1 1 b unique c axis: cell choice 3", "P -2b", ""},
	{7, "P b 1 1 unique a axis: cell choice 1", "P -2xb", ""},
	{7, "P n 1 1 unique a axis: cell choice 2", "P -2xbc", ""},
	{7, "P c 1 1 unique a axis: cell choice 3", "P -2xc", ""},
	{8, "C 1 m 1 unique b axis: cell choice 1", "C -2y", ""},
	{8, "A 1 m 1 unique b axis: cell choice 2", "A -2y", ""},
	{8, "I 1 m 1 unique b axis: cell choice 3", "I -2y", ""},
	{8, "A 1 1 m unique c axis: cell choice 1", "A -2", ""},
	{8, "B 1 1 m  unique c axis: cell choice 2", "B -2", ""},
	{8, "I 1 1 m unique c axis: cell choice 3", "I -2", ""},
	{8, "B m 1 1 unique a axis: cell choice 1", "B -2x", ""},
	{8, "C m 1 1 unique a axis: cell choice 2", "C -2x", ""},
	{8, "I m 1 1 unique a axis: cell choice 3", "I -2x", ""},
	{9, "C 1 c 1 unique b axis: cell choice 1", "C -2yc", ""},
	{9, "A 1 n 1 unique b axis: cell choice 2", "A -2yab", ""},
	{9, "I 1 a 1 unique b axis: cell choice 3", "I -2ya", ""},
	{9, "A 1 a 1 unique -b axis: cell choice 1", "A -2ya", ""},
	{9, "C 1 n 1 unique -b axis: cell choice 2", "C -2yac", ""},
	{9, "I 1 c 1 unique -b axis: cell choice 3", "I -2yc", ""},
	{9, "A 1 1 a unique c axis: cell choice 1", "A -2a", ""},
	{9, "B 1 1 n unique c axis: cell choice 2", "B -2ab", ""},
	{9, "I 1 1 b unique c axis: cell choice 3", "I -2b", ""},
	{9, "B 1 1 b unique -c axis: cell choice 1", "B -2b", ""},
	{9, "A 1 1 n unique -c axis: cell choice 2", "A -2ab", ""},
	{9, "I 1 1 a unique -c axis: cell choice 3", "I -2a", ""},
	{9, "B b 1 1 unique a axis: cell choice 1", "B -2xb", ""},
	{9, "C n 1 1 unique a axis: cell choice 2", "C -2xac", ""},
	{9, "I c 1 1 unique a axis: cell choice 3", "I -2xc", ""},
	{9, "C c 1 1 unique -a axis: cell choice 1", "C -2xc", ""},
	{9, "B n 1 1 unique -a axis: cell choice 2", "B -2xab", ""},
	{9, "I b 1 1 unique -a axis: cell choice 3", "I -2xb", ""},
	{10, "P 1 2/m 1 unique b axis", "-P 2y", ""},
	{10, "P 1 1 2/m unique c axis", "-P 2", ""},
	{10, "P 2/m 1 1 unique a axis", "-P 2x", ""},
	{11, "P 1 21/m 1 unique axis b", "-P 2yb", ""},
	{11, "P 1 1 21/m unique c axis", "-P 2c", ""},
	{11, "P 21/m 1 1 unique a axis", "-P 2xa", ""},
	{12, "C 1 2/m 1 unique b axis: cell choice 1", "-C 2y", ""},
	{12, "A 1 2/m 1 unique b axis: cell choice 2", "-A 2y", ""},
	{12, "I 1 2/m 1 unique b axis: cell choice 3", "-I 2y", ""},
	{12, "A 1 1 2/m unique c axis: cell choice 1", "-A 2", ""},
	{12, "B 1 1 2/m unique c axis: cell choice 2", "-B 2", ""},
	{12, "I 1 1 2/m unique c axis: cell choice 3", "-I 2", ""},
	{12, "B 2/m 1 1 unique a axis: cell choice 1", "-B 2x", ""},
	{12, "C 2/m 1 1 unique a axis: cell choice 2", "-C 2x", ""},
	{12, "I 2/m 1 1 unique a axis: cell choice 3", "-I 2x", ""},
	{13, "P 1 2/c 1 unique b axis: cell choice 1", "-P 2yc", ""},
	{13, "P 1 2/n 1 unique b axis: cell choice 2", "-P 2yac", ""},
	{13, "P 1 2/a 1 unique b axis: cell choice 3", "-P 2ya", ""},
	{13, "P 1 1 2/a unique c axis: cell choice 1", "-P 2a", ""},
	{13, "P 1 1 2/n unique c axis: cell choice 2", "-P 2ab", ""},
	{13, "P 1 1 2/b unique c axis: cell choice 3", "-P 2b", ""},
	{13, "P 2/b 1 1 unique a axis: cell choice 1", "-P 2xb", ""},
	{13, "P 2/n 1 1 unique a axis: cell choice 2", "-P 2xbc", ""},
	{13, "P 2/c 1 1 unique a axis: cell choice 3", "-P 2xc", ""},
	{14, "P 1 21/c 1 unique b axis: cell choice 1", "-P 2ybc", ""},
	{14, "P 1 21/n 1 unique b axis: cell choice 2", "-P 2yn", ""},
	{14, "P 1 21/a 1 unique b axis: cell choice 3", "-P 2yab", ""},
	{14, "P 1 1 21/a unique c axis: cell choice 1", "-P 2ac", ""},
	{14, "P 1 1 21/n unique c axis: cell choice 2", "-P 2n", ""},
	{14, "P 1 1 21/b unique c axis: cell choice 3", "-P 2bc", ""},
	{14, "P 21/b 1 1 unique a axis: cell choice 1", "-P 2xab", ""},
	{14, "P 21/n 1 1 unique a axis: cell choice 2", "-P 2xn", ""},
	{14, "P 21/c 1 1 unique a axis: cell choice 3", "-P 2xac", ""},
	{15, "C 1 2/c 1 unique b axis: cell choice 1", "-C 2yc", ""},
	{15, "A 1 2/n 1 unique b axis: cell choice 2", "-A 2yab", ""},
	{15, "I 1 2/a 1 unique b axis: cell choice 3", "-I 2ya", ""},
	{15, "A 1 2/a 1 unique -b axis: cell choice 1", "-A 2ya", ""},
	{15, "C 1 2/n 1 unique -b axis: cell choice 2", "-C 2yac", ""},
	{15, "I 1 2/c 1 unique -b axis: cell choice 3", "-I 2yc", ""},
	{15, "A 1 1 2/a unique c axis: cell choice 1", "-A 2a", ""},
	{15, "B 1 1 2/n unique c axis: cell choice 2", "-B 2ab", ""},
	{15, "I 1 1 2/b unique c axis: cell choice 3", "-I 2b", ""},
	{15, "B 1 1 2/b unique -c axis: cell choice 1", "-B 2b", ""},
	{15, "A 1 1 2/n unique -c axis: cell choice 2", "-A 2ab", ""},
	{15, "I 1 1 2/a unique -c axis: cell choice 3", "-I 2a", ""},
	{15, "B 2/b 1 1 unique a axis: cell choice 1", "-B 2xb", ""},
	{15, "C 2/n 1 1 unique a axis: cell choice 2", "-C 2xac", ""},
	{15, "I 2/c 1 1 unique a axis: cell choice 3", "-I 2xc", ""},
	{15, "C 2/c 1 1 unique -a axis: cell choice 1", "-C 2xc", ""},
	{15, "B 2/n 1 1 unique -a axis: cell choice 2", "-B 2xab", ""},
	{15, "I 2/b 1 1 unique -a axis: cell choice 3", "-I 2xb", ""},
	{16, "P 2 2 2", "P 2 2", ""},
	{17, "P 2 2 21 Origin-1,abc", "P 2c 2", ""},
	{17, "P 21 2 2 Origin-1,cab", "P 2a 2a", ""},
	{17, "P 2 21 2 Origin-1,bca", "P 2 2b", ""},
	{18, "P 21 21 2 Origin-1,abc", "P 2 2ab", ""},
	{18, "P 2 21 21 Origin-1,cab", "P 2bc 2", ""},
	{18, "P 21 2 21 Origin-1,bca", "P 2ac 2ac", ""},
	{19, "P 21 21 21", "P 2ac 2ab", ""},
	{20, "C 2 2 21  Origin-1,abc", "C 2c 2", ""},
	{20, "A 21 2 2  Origin-1,cba", "A 2a 2a", ""},
	{20, "B 2 21 2  Origin-1,bca", "B 2 2b", ""},
	{21, "C 2 2 2 Origin-1,abc", "C 2 2", ""},
	{21, "A 2 2 2 Origin-1,cab", "A 2 2", ""},
	{21, "B 2 2 2 Origin-1,bca", "B 2 2", ""},
	{22, "F 2 2 2", "F 2 2", ""},
	{23, "I 2 2 2", "I 2 2", ""},
	{24, "I 21 21 21", "I 2b 2c", ""},
	{25, "P m m 2", "P 2 -2", ""},
	{25, "P 2 m m", "P -2 2", ""},
	{25, "P m 2 m", "P -2 -2", ""},
	{26, "P m c 21", "P 2c -2", ""},
	{26, "P c m 21", "P 2c -2c", ""},
	{26, "P 21 m a", "P -2a 2a", ""},
	{26, "P 21 a m", "P -2 2a", ""},
	{26, "P b 21 m", "P -2 -2b", ""},
	{26, "P m 21 b", "P -2b -2", ""},
	{27, "P c c 2", "P 2 -2c", ""},
	{27, "P 2 a a", "P -2a 2", ""},
	{27, "P b 2 b", "P -2b -2b", ""},
	{28, "P m a 2", "P 2 -2a", ""},
	{28, "P b m 2", "P 2 -2b", ""},
	{28, "P 2 m b", "P -2b 2", ""},
	{28, "P 2 c m", "P -2c 2", ""},
	{28, "P c 2 m", "P -2c -2c", ""},
	{28, "P m 2 a", "P -2a -2a", ""},
	{29, "P c a 21", "P 2c -2ac", ""},
	{29, "P b c 21", "P 2c -2b", ""},
	{29, "P 21 a b", "P -2b 2a", ""},
	{29, "P 21 c a", "P -2ac 2a", ""},
	{29, "P c 21 b", "P -2bc -2c", ""},
	{29, "P b 21 a", "P -2a -2ab", ""},
	{30, "P n c 2", "P 2 -2bc", ""},
	{30, "P c n 2", "P 2 -2ac", ""},
	{30, "P 2 n a", "P -2ac 2", ""},
	{30, "P 2 a n", "P -2ab 2", ""},
	{30, "P b 2 n", "P -2ab -2ab", ""},
	{30, "P n 2 b", "P -2bc -2bc", ""},
	{31, "P m n 21", "P 2ac -2", ""},
	{31, "P n m 21", "P 2bc -2bc", ""},
	{31, "P 21 m n", "P -2ab 2ab", ""},
	{31, "P 21 n m", "P -2 2ac", ""},
	{31, "P n 21 m", "P -2 -2bc", ""},
	{31, "P m 21 n", "P -2ab -2", ""},
	{32, "P b a 2", "P 2 -2ab", ""},
	{32, "P 2 c b", "P -2bc 2", ""},
	{32, "P c 2 a", "P -2ac -2ac", ""},
	{33, "P n a 21", "P 2c -2n", ""},
	{33, "P b n 21", "P 2c -2ab", ""},
	{33, "P 21 n b", "P -2bc 2a", ""},
	{33, "P 21 c n", "P -2n 2a", ""},
	{33, "P c 21 n", "P -2n -2ac", ""},
	{33, "P n 21 a", "P -2ac -2n", ""},
	{34, "P n n 2", "P 2 -2n", ""},
	{34, "P 2 n n", "P -2n 2", ""},
	{34, "P n 2 n", "P -2n -2n", ""},
	{35, "C m m 2", "C 2 -2", ""},
	{35, "A 2 m m", "A -2 2", ""},
	{35, "B m 2 m", "B -2 -2", ""},
	{36, "C m c 21", "C 2c -2", ""},
	{36, "C c m 21", "C 2c -2c", ""},
	{36, "A 21 m a", "A -2a 2a", ""},
	{36, "A 21 a m", "A -2 2a", ""},
	{36, "B b 21 m", "B -2 -2b", ""},
	{36, "B m 21 b", "B -2b -2", ""},
	{37, "C c c 2", "C 2 -2c", ""},
	{37, "A 2 a a", "A -2a 2", ""},
	{37, "B b 2 b", "B -2b -2b", ""},
	{38, "A m m 2", "A 2 -2", ""},
	{38, "B m m 2", "B 2 -2", ""},
	{38, "B 2 m m", "B -2 2", ""},
	{38, "C 2 m m", "C -2 2", ""},
	{38, "C m 2 m", "C -2 -2", ""},
	{38, "A m 2 m", "A -2 -2", ""},
	{39, "A b m 2", "A 2 -2b", ""},
	{39, "B m a 2", "B 2 -2a", ""},
	{39, "B 2 c m", "B -2a 2", ""},
	{39, "C 2 m b", "C -2a 2", ""},
	{39, "C m 2 a", "C -2a -2a", ""},
	{39, "A c 2 m", "A -2b -2b", ""},
	{40, "A m a 2", "A 2 -2a", ""},
	{40, "B b m 2", "B 2 -2b", ""},
	{40, "B 2 m b", "B -2b 2", ""},
	{40, "C 2 c m", "C -2c 2", ""},
	{40, "C c 2 m", "C -2c -2c", ""},
	{40, "A m 2 a", "A -2a -2a", ""},
	{41, "A b a 2", "A 2 -2ab", ""},
	{41, "B b a 2", "B 2 -2ab", ""},
	{41, "B 2 c b", "B -2ab 2", ""},
	{41, "C 2 c b", "C -2ac 2", ""},
	{41, "C c 2 a", "C -2ac -2ac", ""},
	{41, "A c 2 a", "A -2ab -2ab", ""},
	{42, "F m m 2", "F 2 -2", ""},
	{42, "F 2 m m", "F -2 2", ""},
	{42, "F m 2 m", "F -2 -2", ""},
	{43, "F d d 2", "F 2 -2d", ""},
	{43, "F 2 d d", "F -2d 2", ""},
	{43, "F d 2 d", "F -2d -2d", ""},
	{44, "I m m 2", "I 2 -2", ""},
	{44, "I 2 m m", "I -2 2", ""},
	{44, "I m 2 m", "I -2 -2", ""},
	{45, "I b a 2", "I 2 -2c", ""},
	{45, "I 2 c b", "I -2a 2", ""},
	{45, "I c 2 a", "I -2b -2b", ""},
	{46, "I m a 2", "I 2 -2a", ""},
	{46, "I b m 2", "I 2 -2b", ""},
	{46, "I 2 m b", "I -2b 2", ""},
	{46, "I 2 c m", "I -2c 2", ""},
	{46, "I c 2 m", "I -2c -2c", ""},
	{46, "I m 2 a", "I -2a -2a", ""},
	{47, "P m m m", "-P 2 2", ""},
	{48, "P n n n Origin choice 1", "P 2 2 -1n", ""},
	{48, "P n n n Origin choice 2", "-P 2ab 2bc", ""},
	{49, "P c c m", "-P 2 2c", ""},
	{49, "P m a a", "-P 2a 2", ""},
	{49, "P b m b", "-P 2b 2b", ""},
	{50, "P b a n Origin choice 1", "P 2 2 -1ab", ""},
	{50, "P b a n Origin choice 2", "-P 2ab 2b", ""},
	{50, "P n c b Origin choice 1", "P 2 2 -1bc", ""},
	{50, "P n c b Origin choice 2", "-P 2b 2bc", ""},
	{50, "P c n a Origin choice 1", "P 2 2 -1ac", ""},
	{50, "P c n a Origin choice 2", "-P 2a 2c", ""},
	{51, "P m m a", "-P 2a 2a", ""},
	{51, "P m m b", "-P 2b 2", ""},
	{51, "P b m m", "-P 2 2b", ""},
	{51, "P c m m", "-P 2c 2c", ""},
	{51, "P m c m", "-P 2c 2", ""},
	{51, "P m a m", "-P 2 2a", ""},
	{52, "P n n a", "-P 2a 2bc", ""},
	{52, "P n n b", "-P 2b 2n", ""},
	{52, "P b n n", "-P 2n 2b", ""},
	{52, "P c n n", "-P 2ab 2c", ""},
	{52, "P n c n", "-P 2ab 2n", ""},
	{52, "P n a n", "-P 2n 2bc", ""},
	{53, "P m n a", "-P 2ac 2", ""},
	{53, "Pnmb", "-P 2bc 2bc", ""},
	{53, "P b m n", "-P 2ab 2ab", ""},
	{53, "P c n m", "-P 2 2ac", ""},
	{53, "P n c m", "-P 2 2bc", ""},
	{53, "P m a n", "-P 2ab 2", ""},
	{54, "P c c a", "-P 2a 2ac", ""},
	{54, "P c c b", "-P 2b 2c", ""},
	{54, "P b a a", "-P 2a 2b", ""},
	{54, "P c a a", "-P 2ac 2c", ""},
	{54, "P b c b", "-P 2bc 2b", ""},
	{54, "P b a b", "-P 2b 2ab", ""},
	{55, "P b a m", "-P 2 2ab", ""},
	{55, "P m c b", "-P 2bc 2", ""},
	{55, "P c m a", "-P 2ac 2ac", ""},
	{56, "P c c n", "-P 2ab 2ac", ""},
	{56, "P n a a", "-P 2ac 2bc", ""},
	{56, "P b n b", "-P 2bc 2ab", ""},
	{57, "P b c m", "-P 2c 2b", ""},
	{57, "P c a m", "-P 2c 2ac", ""},
	{57, "P m c a", "-P 2ac 2a", ""},
	{57, "P m a b", "-P 2b 2a", ""},
	{57, "P b m a", "-P 2a 2ab", ""},
	{57, "P c m b", "-P 2bc 2c", ""},
	{58, "P n n m", "-P 2 2n", ""},
	{58, "P m n n", "-P 2n 2", ""},
	{58, "P n m n", "-P 2n 2n", ""},
	{59, "P m m n Origin choice 1", "P 2 2ab -1ab", ""},
	{59, "P m m n Origin choice 2", "-P 2ab 2a", ""},
	{59, "P n m m Origin choice 1", "P 2bc 2 -1bc", ""},
	{59, "P n m m Origin choice 2", "-P 2c 2bc", ""},
	{59, "P m n m Origin choice 1", "P 2ac 2ac -1ac", ""},
	{59, "P m n m Origin choice 2", "-P 2c 2a", ""},
	{60, "P b c n", "-P 2n 2ab", ""},
	{60, "P c a n", "-P 2n 2c", ""},
	{60, "P n c a", "-P 2a 2n", ""},
	{60, "P n a b", "-P 2bc 2n", ""},
	{60, "P b n a", "-P 2ac 2b", ""},
	{60, "P c n b", "-P 2b 2ac", ""},
	{61, "P b c a", "-P 2ac 2ab", ""},
	{61, "P c a b", "-P 2bc 2ac", ""},
	{62, "P n m a", "-P 2ac 2n", "zeolites: MFI"},
	{62, "P m n b", "-P 2bc 2a", ""},
	{62, "P b n m", "-P 2c 2ab", ""},
	{62, "P c m n", "-P 2n 2ac", ""},
	{62, "P m c n", "-P 2n 2a", ""},
	{62, "P n a m", "-P 2c 2n", ""},
	{63, "C m c m", "-C 2c 2", ""},
	{63, "C c m m", "-C 2c 2c", ""},
	{63, "A m m a", "-A 2a 2a", ""},
	{63, "A m a m", "-A 2 2a", ""},
	{63, "B b m m", "-B 2 2b", ""},
	{63, "B m m b", "-B 2b 2", ""},
	{64, "C m c a", "-C 2ac 2", ""},
	{64, "C c m b", "-C 2ac 2ac", ""},
	{64, "A b m a", "-A 2ab 2ab", ""},
	{64, "A c a m", "-A 2 2ab", ""},
	{64, "B b c m", "-B 2 2ab", ""},
	{64, "B m a b", "-B 2ab 2", ""},
	{65, "C m m m", "-C 2 2", ""},
	{65, "A m m m", "-A 2 2", ""},
	{65, "B m m m", "-B 2 2", ""},
	{66, "C c c m", "-C 2 2c", ""},
	{66, "A m a a", "-A 2a 2", ""},
	{66, "B b m b", "-B 2b 2b", ""},
	{67, "C m m a", "-C 2a 2", ""},
	{67, "C m m b", "-C 2a 2a", ""},
	{67, "A b m m", "-A 2b 2b", ""},
	{67, "A c m m", "-A 2 2b", ""},
	{67, "B m c m", "-B 2 2a", ""},
	{67, "B m a m", "-B 2a 2", ""},
	{68, "C c c a Origin choice 1", "C 2 2 -1ac", ""},
	{68, "C c c a Origin choice 2", "-C 2a 2ac", ""},
	{68, "C c c b Origin choice 1", "C 2 2 -1bc", ""},
	{68, "C c c b Origin choice 2", "-C 2b 2c", ""},
	{68, "A b a a Origin choice 1", "A 2 2 -1ac", ""},
	{68, "A b a a Origin choice 2", "-A 2a 2b", ""},
	{68, "A c a a Origin choice 1", "A 2 2 -1ab", ""},
	{68, "A c a a Origin choice 2", "-A 2ab 2b", ""},
	{68, "B b c b Origin choice 1", "B 2 2 -1ab", ""},
	{68, "B b c b Origin choice 2", "-B 2ab 2b", ""},
	{68, "B b a b Origin choice 1", "B 2 2 -1ab", ""},
	{68, "B b a b Origin choice 2", "-B 2b 2ab", ""},
	{69, "F m m m", "-F 2 2", ""},
	{70, "F d d d:1 Origin choice 1", "F 2 2 -1d", ""},
	{70, "F d d d:2 Origin choice 2", "-F 2uv 2vw", ""},
	{71, "I m m m", "-I 2 2", ""},
	{72, "I b a m", "-I 2 2c", ""},
	{72, "I m c b", "-I 2a 2", ""},
	{72, "I c m a", "-I 2b 2b", ""},
	{73, "I b c a", "-I 2b 2c", ""},
	{73, "I c a b", "-I 2a 2b", ""},
	{74, "I m m a", "-I 2b 2", ""},
	{74, "I m m b", "-I 2a 2a", ""},
	{74, "I b m m", "-I 2c 2c", ""},
	{74, "I c m m", "-I 2 2b", ""},
	{74, "I m c m", "-I 2 2a", ""},
	{74, "I m a m", "-I 2c 2", ""},
	{75, "P 4", "P 4", ""},
	{76, "P 41", "P 4w", ""},
	{77, "P 42", "P 4c", ""},
	{78, "P 43", "P 4cw", ""},
	{79, "I 4", "I 4", ""},
	{80, "I 41", "I 4bw", ""},
	{81, "P -4", "P -4", ""},
	{82, "I -4", "I -4", ""},
	{83, "P 4/m", "-P 4", ""},
	{84, "P 42/m", "-P 4c", ""},
	{85, "P 4/n Origin choice 1", "P 4ab -1ab", ""},
	{85, "P 4/n Origin choice 2", "-P 4a", ""},
	{86, "P 42/n Origin choice 1", "P 4n -1n", ""},
	{86, "P 42/n Origin choice 2", "-P 4bc", ""},
	{87, "I 4/m", "-I 4", ""},
	{88, "I 41/a Origin choice 1", "I 4bw -1bw", ""},
	{88, "I 41/a Origin choice 2", "-I 4ad", ""},
	{89, "P 4 2 2", "P 4 2", ""},
	{90, "P 4 21 2", "P 4ab 2ab", ""},
	{91, "P 41 2 2", "P 4w 2c", ""},
	{92, "P 41 21 2", "P 4abw 2nw", ""},
	{93, "P 42 2 2", "P 4c 2", ""},
	{94, "P 42 21 2", "P 4n 2n", ""},
	{95, "P 43 2 2", "P 4cw 2c", ""},
	{96, "P 43 21 2", "P 4nw 2abw", ""},
	{97, "I 4 2 2", "I 4 2", ""},
	{98, "I 41 2 2", "I 4bw 2bw", ""},
	{99, "P 4 m m", "P 4 -2", ""},
	{100, "P 4 b m", "P 4 -2ab", ""},
	{101, "P 42 c m", "P 4c -2c", ""},
	{102, "P 42 n m", "P 4n -2n", ""},
	{103, "P 4 c c", "P 4 -2c", ""},
	{104, "P 4 n c", "P 4 -2n", ""},
	{105, "P 42 m c", "P 4c -2", ""},
	{106, "P 42 b c", "P 4c -2ab", ""},
	{107, "I 4 m m", "I 4 -2", ""},
	{108, "I 4 c m", "I 4 -2c", ""},
	{109, "I 41 m d", "I 4bw -2", ""},
	{110, "I 41 c d", "I 4bw -2c", ""},
	{111, "P -4 2 m", "P -4 2", ""},
	{112, "P -4 2 c", "P -4 2c", ""},
	{113, "P -4 21 m", "P -4 2ab", ""},
	{114, "P -4 21 c", "P -4 2n", ""},
	{115, "P -4 m 2", "P -4 -2", ""},
	{116, "P -4 c 2", "P -4 -2c", ""},
	{117, "P -4 b 2", "P -4 -2ab", ""},
	{118, "P -4 n 2", "P -4 -2n", ""},
	{119, "I -4 m 2", "I -4 -2", ""},
	{120, "I -4 c 2", "I -4 -2c", ""},
	{121, "I -4 2 m", "I -4 2", ""},
	{122, "I -4 2 d", "I -4 2bw", ""},
	{123, "P 4/m m m", "-P 4 2", ""},
	{124, "P 4/m c c", "-P 4 2c", ""},
	{125, "P 4/n b m Origin choice 1", "P 4 2 -1ab", ""},
	{125, "P 4/n b m Origin choice 2", "-P 4a 2b", ""},
	{126, "P 4/n n c Origin choice 1", "P 4 2 -1n", ""},
	{126, "P 4/n n c Origin choice 2", "-P 4a 2bc", ""},
	{127, "P 4/m b m", "-P 4 2ab", ""},
	{128, "P 4/m n c", "-P 4 2n", ""},
	{129, "P 4/n m m Origin choice 1", "P 4ab 2ab -1ab", ""},
	{129, "P 4/n m m Origin choice 2", "-P 4a 2a", ""},
	{130, "P 4/n c c Origin choice 1", "P 4ab 2n -1ab", ""},
	{130, "P 4/n c c Origin choice 2", "-P 4a 2ac", ""},
	{131, "P 42/m m c", "-P 4c 2", ""},
	{132, "P 42/m c m", "-P 4c 2c", ""},
	{133, "P 42/n b c Origin choice 1", "P 4n 2c -1n", ""},
	{133, "P 42/n b c Origin choice 2", "-P 4ac 2b", ""},
	{134, "P 42/n n m Origin choice 1", "P 4n 2 -1n", ""},
	{134, "P 42/n n m Origin choice 2", "-P 4ac 2bc", ""},
	{135, "P 42/m b c", "-P 4c 2ab", ""},
	{136, "P 42/m n m", "-P 4n 2n", ""},
	{137, "P 42/n m c Origin choice 1", "P 4n 2n -1n", ""},
	{137, "P 42/n m c Origin choice 2", "-P 4ac 2a", ""},
	{138, "P 42/n c m Origin choice 1", "P 4n 2ab -1n", ""},
	{138, "P 42/n c m Origin choice 2", "-P 4ac 2ac", ""},
	{139, "I 4/m m m", "-I 4 2", ""},
	{140, "I 4/m c m", "-I 4 2c", ""},
	{141, "I 41/a m d Origin choice 1", "I 4bw 2bw -1bw", ""},
	{141, "I 41/a m d Origin choice 2", "-I 4bd 2", ""},
	{142, "I 41/a c d Origin choice 1", "I 4bw 2aw -1bw", ""},
	{142, "I 41/a c d Origin choice 2", "-I 4bd 2c", ""},
	{143, "P 3", "P 3", ""},
	{144, "P 31", "P 31", ""},
	{145, "P 32", "P 32", ""},
	{146, "R 3 hexagonal axes", "R 3", ""},
	{146, "R 3 Rhombohedral axes", "P 3*", ""},
	{147, "P -3", "P -3", ""},
	{148, "R-3 hexagonal axes", "-R 3", ""},
	{148, "R -3 Rhombohedral axes", "-P 3*", ""},
	{149, "P 3 1 2", "P 3 2", ""},
	{150, "P 3 2 1", "P 3 2\"", ""},
	{151, "P 31 1 2", "P 31 2 (0 0 4)", ""},
	{152, "P 31 2 1", "P 31 2\"", ""},
	{153, "P 32 1 2", "P 32 2 (0 0 2)", ""},
	{154, "P 32 2 1", "P 32 2\"", ""},
	{155, "R 3 2 Hexagonal axes", "R 3 2\"", ""},
	{155, "R 3 2 Rhombohedral axes", "P 3* 2", ""},
	{156, "P 3 m 1", "P 3 -2\"", ""},
	{157, "P 3 1 m", "P 3 -2", ""},
	{158, "P 3 c 1", "P 3 -2\"c", ""},
	{159, "P 3 1 c", "P 3 -2c", ""},
	{160, "R 3 m Hexagonal axes", "R 3 -2\"", ""},
	{160, "R 3 m Rhombohedral axes", "P 3* -2", ""},
	{161, "R 3 c Hexagonal axes", "R 3 -2\"c", ""},
	{161, "R 3 c Rhombohedral axes", "P 3* -2n", ""},
	{162, "P -3 1 m", "-P 3 2", ""},
	{163, "P -3 1 c", "-P 3 2c", ""},
	{164, "P -3 m 1", "-P 3 2\"", ""},
	{165, "P -3 c 1", "-P 3 2\"c", ""},
	{166, "R -3 m Hexagonal axes", "-R 3 2\"", "zeolites: CHA"},
	{166, "R -3 m Rhombohedral axes", "-P 3* 2", ""},
	{167, "R -3 c Hexagonal axes", "-R 3 2\"c", ""},
	{167, "R -3 c Rhombohedral axes", "-P 3* 2n", ""},
	{168, "P 6", "P 6", ""},
	{169, "P 61", "P 61", ""},
	{170, "P 65", "P 65", ""},
	{171, "P 62", "P 62", ""},
	{172, "P 64", "P 64", ""},
	{173, "P 63", "P 6c", ""},
	{174, "P -6", "P -6", ""},
	{175, "P6/m", "-P 6", ""},
	{176, "P 63/m", "-P 6c", ""},
	{177, "P 6 2 2", "P 6 2", ""},
	{178, "P 61 2 2", "P 61 2 (0 0 5)", ""},
	{179, "P 65 2 2", "P 65 2 (0 0 1)", ""},
	{180, "P 62 2 2", "P 62 2 (0 0 4)", ""},
	{181, "P 64 2 2", "P 64 2 (0 0 2)", ""},
	{182, "P 63 2 2", "P 6c 2c", ""},
	{183, "P 6 m m", "P 6 -2", ""},
	{184, "P 6 c c", "P 6 -2c", ""},
	{185, "P 63 c m", "P 6c -2", ""},
	{186, "P 63 m c", "P 6c -2c", ""},
	{187, "P -6 m 2", "P -6 2", ""},
	{188, "P -6 c 2", "P -6c 2", ""},
	{189, "P -6 2 m", "P -6 -2", ""},
	{190, "P -6 2 c", "P -6c -2c", ""},
	{191, "P 6/m m m", "-P 6 2", ""},
	{192, "P 6/m c c", "-P 6 2c", ""},
	{193, "P 63/m c m", "-P 6c 2", ""},
	{194, "P 63/m m c", "-P 6c 2c", ""},
	{195, "P 2 3", "P 2 2 3", ""},
	{196, "F 2 3", "F 2 2 3", ""},
	{197, "I 2 3", "I 2 2 3", ""},
	{198, "P 21 3", "P 2ac 2ab 3", ""},
	{199, "I 21 3", "I 2b 2c 3", ""},
	{200, "P m -3", "-P 2 2 3", ""},
	{201, "P n -3 Origin choice 1", "P 2 2 3 -1n", ""},
	{201, "P n -3 Origin choice 2", "-P 2ab 2bc 3", ""},
	{202, "F m -3", "-F 2 2 3", ""},
	{203, "F d -3 Origin choice 1", "F 2 2 3 -1d", ""},
	{203, "F d -3 Origin choice 2", "-F 2uv 2vw 3", ""},
	{204, "I m -3", "-I 2 2 3", ""},
	{205, "P a -3", "-P 2ac 2ab 3", ""},
	{206, "I a -3", "-I 2b 2c 3", ""},
	{207, "P 4 3 2", "P 4 2 3", ""},
	{208, "P 42 3 2", "P 4n 2 3", ""},
	{209, "F 4 3 2", "F 4 2 3", ""},
	{210, "F 41 3 2", "F 4d 2 3", ""},
	{211, "I 4 3 2", "I 4 2 3", ""},
	{212, "P 43 3 2", "P 4acd 2ab 3", ""},
	{213, "P 41 3 2", "P 4bd 2ab 3", ""},
	{214, "I 41 3 2", "I 4bd 2c 3", ""},
	{215, "P -4 3 m", "P -4 2 3", ""},
	{216, "F -4 3 m", "F -4 2 3", ""},
	{217, "I -4 3 m", "I -4 2 3", ""},
	{218, "P -4 3 n", "P -4n 2 3", ""},
	{219, "F -4 3 c", "F -4a 2 3", ""},
	{220, "I -4 3 d", "I -4bd 2c 3", ""},
	{221, "P m -3 m", "-P 4 2 3", ""},
	{222, "P n -3 n Origin choice 1", "P 4 2 3 -1n", ""},
	{222, "P n -3 n Origin choice 2", "-P 4a 2bc 3", ""},
	{223, "P m -3 n", "-P 4n 2 3", ""},
	{224, "P n -3 m Origin choice 1", "P 4n 2 3 -1n", ""},
	{224, "P n -3 m Origin choice 2", "-P 4bc 2bc 3", ""},
	{225, "F m -3 m", "-F 4 2 3", ""},
	{226, "F m -3 c", "-F 4a 2 3", ""},
	{227, "F d -3 m Origin choice 1", "F 4d 2 3 -1d", ""},
	{227, "F d -3 m Origin choice 2", "-F 4vw 2vw 3", "e.g. FAU, MIL-100, 101"},
	{228, "F d -3 c Origin choice 1", "F 4d 2 3 -1ad", ""},
	{228, "F d -3 c Origin choice 2", "-F 4ud 2vw 3", ""},
	{229, "I m -3 m", "-I 4 2 3", ""},
	{230, "I a -3 d", "-I 4bd 2c 3", ""},
}

//bySpaceGroup lists, for each space group number, the Hall numbers of its
//settings. The first one is the standard setting; for the groups with two
//origin choices that is the second origin, which has the inversion center
//at the origin.
var bySpaceGroup = [231][]int{
	0: nil,
	1: {1},
	2: {2},
	3: {3, 4, 5},
	4: {6, 7, 8},
	5: {9, 10, 11, 12, 13, 14, 15, 16, 17},
	6: {18, 19, 20},
	7: {21, 22, 23, 24, 25, 26, 27, 28, 29},
	8: {30, 31, 32, 33, 34, 35, 36, 37, 38},
	9: {39, 40, 41, 42, 43, 44, 45, 46, 47, 48, 49, 50, 51, 52, 53, 54, 55, 56},
	10: {57, 58, 59},
	11: {60, 61, 62},
	12: {63, 64, 65, 66, 67, 68, 69, 70, 71},
	13: {72, 73, 74, 75, 76, 77, 78, 79, 80},
	14: {81, 82, 83, 84, 85, 86, 87, 88, 89},
	15: {90, 91, 92, 93, 94, 95, 96, 97, 98, 99, 100, 101, 102, 103, 104, 105, 106, 107},
	16: {108},
	17: {109, 110, 111},
	18: {112, 113, 114},
	19: {115},
	20: {116, 117, 118},
	21: {119, 120, 121},
	22: {122},
	23: {123},
	24: {124},
	25: {125, 126, 127},
	26: {128, 129, 130, 131, 132, 133},
	27: {134, 135, 136},
	28: {137, 138, 139, 140, 141, 142},
	29: {143, 144, 145, 146, 147, 148},
	30: {149, 150, 151, 152, 153, 154},
	31: {155, 156, 157, 158, 159, 160},
	32: {161, 162, 163},
	33: {164, 165, 166, 167, 168, 169},
	34: {170, 171, 172},
	35: {173, 174, 175},
	36: {176, 177, 178, 179, 180, 181},
	37: {182, 183, 184},
	38: {185, 186, 187, 188, 189, 190},
	39: {191, 192, 193, 194, 195, 196},
	40: {197, 198, 199, 200, 201, 202},
	41: {203, 204, 205, 206, 207, 208},
	42: {209, 210, 211},
	43: {212, 213, 214},
	44: {215, 216, 217},
	45: {218, 219, 220},
	46: {221, 222, 223, 224, 225, 226},
	47: {227},
	48: {229, 228},
	49: {230, 231, 232},
	50: {234, 233, 236, 235, 238, 237},
	51: {239, 240, 241, 242, 243, 244},
	52: {245, 246, 247, 248, 249, 250},
	53: {251, 252, 253, 254, 255, 256},
	54: {257, 258, 259, 260, 261, 262},
	55: {263, 264, 265},
	56: {266, 267, 268},
	57: {269, 270, 271, 272, 273, 274},
	58: {275, 276, 277},
	59: {279, 278, 281, 280, 283, 282},
	60: {284, 285, 286, 287, 288, 289},
	61: {290, 291},
	62: {292, 293, 294, 295, 296, 297},
	63: {298, 299, 300, 301, 302, 303},
	64: {304, 305, 306, 307, 308, 309},
	65: {310, 311, 312},
	66: {313, 314, 315},
	67: {316, 317, 318, 319, 320, 321},
	68: {323, 322, 325, 324, 327, 326, 329, 328, 331, 330, 333, 332},
	69: {334},
	70: {336, 335},
	71: {337},
	72: {338, 339, 340},
	73: {341, 342},
	74: {343, 344, 345, 346, 347, 348},
	75: {349},
	76: {350},
	77: {351},
	78: {352},
	79: {353},
	80: {354},
	81: {355},
	82: {356},
	83: {357},
	84: {358},
	85: {360, 359},
	86: {362, 361},
	87: {363},
	88: {365, 364},
	89: {366},
	90: {367},
	91: {368},
	92: {369},
	93: {370},
	94: {371},
	95: {372},
	96: {373},
	97: {374},
	98: {375},
	99: {376},
	100: {377},
	101: {378},
	102: {379},
	103: {380},
	104: {381},
	105: {382},
	106: {383},
	107: {384},
	108: {385},
	109: {386},
	110: {387},
	111: {388},
	112: {389},
	113: {390},
	114: {391},
	115: {392},
	116: {393},
	117: {394},
	118: {395},
	119: {396},
	120: {397},
	121: {398},
	122: {399},
	123: {400},
	124: {401},
	125: {403, 402},
	126: {405, 404},
	127: {406},
	128: {407},
	129: {409, 408},
	130: {411, 410},
	131: {412},
	132: {413},
	133: {415, 414},
	134: {417, 416},
	135: {418},
	136: {419},
	137: {421, 420},
	138: {423, 422},
	139: {424},
	140: {425},
	141: {427, 426},
	142: {429, 428},
	143: {430},
	144: {431},
	145: {432},
	146: {433, 434},
	147: {435},
	148: {436, 437},
	149: {438},
	150: {439},
	151: {440},
	152: {441},
	153: {442},
	154: {443},
	155: {444, 445},
	156: {446},
	157: {447},
	158: {448},
	159: {449},
	160: {450, 451},
	161: {452, 453},
	162: {454},
	163: {455},
	164: {456},
	165: {457},
	166: {458, 459},
	167: {460, 461},
	168: {462},
	169: {463},
	170: {464},
	171: {465},
	172: {466},
	173: {467},
	174: {468},
	175: {469},
	176: {470},
	177: {471},
	178: {472},
	179: {473},
	180: {474},
	181: {475},
	182: {476},
	183: {477},
	184: {478},
	185: {479},
	186: {480},
	187: {481},
	188: {482},
	189: {483},
	190: {484},
	191: {485},
	192: {486},
	193: {487},
	194: {488},
	195: {489},
	196: {490},
	197: {491},
	198: {492},
	199: {493},
	200: {494},
	201: {496, 495},
	202: {497},
	203: {499, 498},
	204: {500},
	205: {501},
	206: {502},
	207: {503},
	208: {504},
	209: {505},
	210: {506},
	211: {507},
	212: {508},
	213: {509},
	214: {510},
	215: {511},
	216: {512},
	217: {513},
	218: {514},
	219: {515},
	220: {516},
	221: {517},
	222: {519, 518},
	223: {520},
	224: {522, 521},
	225: {523},
	226: {524},
	227: {526, 525},
	228: {527, 528},
	229: {529},
	230: {530},
}
